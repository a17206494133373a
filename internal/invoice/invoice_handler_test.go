package invoice_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"biztime/internal/company"
	"biztime/internal/invoice"
	invoiceerrors "biztime/internal/invoice/errors"
	"biztime/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeInvoiceService struct {
	ListFn    func(ctx context.Context) ([]invoice.InvoiceListItem, error)
	GetByIDFn func(ctx context.Context, id int64) (invoice.InvoiceDetailResponse, error)
	CreateFn  func(ctx context.Context, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error)
	UpdateFn  func(ctx context.Context, id int64, req invoice.UpdateInvoiceRequest) (invoice.InvoiceResponse, error)
	DeleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeInvoiceService) List(ctx context.Context) ([]invoice.InvoiceListItem, error) {
	return f.ListFn(ctx)
}
func (f *fakeInvoiceService) GetByID(ctx context.Context, id int64) (invoice.InvoiceDetailResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeInvoiceService) Create(ctx context.Context, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeInvoiceService) Update(ctx context.Context, id int64, req invoice.UpdateInvoiceRequest) (invoice.InvoiceResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeInvoiceService) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc invoice.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop()))

	for _, rt := range invoice.Routes(invoice.NewHandler(svc, zap.NewNop())) {
		r.Handle(rt.Method, rt.Path, rt.Handlers...)
	}
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInvoiceHandler_List(t *testing.T) {
	svc := &fakeInvoiceService{
		ListFn: func(ctx context.Context) ([]invoice.InvoiceListItem, error) {
			return []invoice.InvoiceListItem{{ID: 1, CompCode: "ibm"}}, nil
		},
	}

	w := serve(setupRouter(svc), http.MethodGet, "/invoices", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"invoices":[{"id":1,"comp_code":"ibm"}]}`, w.Body.String())
}

func TestInvoiceHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeInvoiceService{
			GetByIDFn: func(ctx context.Context, id int64) (invoice.InvoiceDetailResponse, error) {
				assert.Equal(t, int64(7), id)
				return invoice.InvoiceDetailResponse{
					ID: 7, Amt: "200.00", AddDate: "2026-10-19",
					Company: &company.CompanyResponse{Code: "ibm", Name: "IBM"},
				}, nil
			},
		}

		w := serve(setupRouter(svc), http.MethodGet, "/invoices/7", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"invoice":{"id":7,"amt":"200.00","paid":false,"add_date":"2026-10-19","paid_date":null,
			"company":{"code":"ibm","name":"IBM","description":null}}}`, w.Body.String())
	})

	t.Run("company missing renders null", func(t *testing.T) {
		svc := &fakeInvoiceService{
			GetByIDFn: func(ctx context.Context, id int64) (invoice.InvoiceDetailResponse, error) {
				return invoice.InvoiceDetailResponse{ID: id, Amt: "1.00", AddDate: "2026-10-19"}, nil
			},
		}

		w := serve(setupRouter(svc), http.MethodGet, "/invoices/7", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"company":null`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeInvoiceService{
			GetByIDFn: func(ctx context.Context, id int64) (invoice.InvoiceDetailResponse, error) {
				return invoice.InvoiceDetailResponse{}, invoiceerrors.ErrInvoiceNotFound
			},
		}

		w := serve(setupRouter(svc), http.MethodGet, "/invoices/404", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Invoice not found","status":404}}`, w.Body.String())
	})

	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		t.Run("invalid id "+id, func(t *testing.T) {
			w := serve(setupRouter(&fakeInvoiceService{}), http.MethodGet, "/invoices/"+id, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":{"message":"Invalid invoice id","status":400}}`, w.Body.String())
		})
	}
}

func TestInvoiceHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeInvoiceService{
			CreateFn: func(ctx context.Context, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error) {
				assert.Equal(t, "ibm", req.CompCode)
				assert.Equal(t, "200", req.Amt.String())
				return invoice.InvoiceResponse{ID: 1, CompCode: "ibm", Amt: "200.00", AddDate: "2026-10-19"}, nil
			},
		}

		w := serve(setupRouter(svc), http.MethodPost, "/invoices", `{"comp_code":"ibm","amt":200}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"invoice":{"id":1,"comp_code":"ibm","amt":"200.00","paid":false,"add_date":"2026-10-19","paid_date":null}}`, w.Body.String())
	})

	t.Run("missing amt", func(t *testing.T) {
		w := serve(setupRouter(&fakeInvoiceService{}), http.MethodPost, "/invoices", `{"comp_code":"ibm"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "is required")
	})

	t.Run("unknown company", func(t *testing.T) {
		svc := &fakeInvoiceService{
			CreateFn: func(ctx context.Context, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error) {
				return invoice.InvoiceResponse{}, invoiceerrors.ErrCompanyCodeNotExist
			},
		}

		w := serve(setupRouter(svc), http.MethodPost, "/invoices", `{"comp_code":"nope","amt":10}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Company code does not exist","status":400}}`, w.Body.String())
	})
}

func TestInvoiceHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeInvoiceService{
			UpdateFn: func(ctx context.Context, id int64, req invoice.UpdateInvoiceRequest) (invoice.InvoiceResponse, error) {
				assert.Equal(t, int64(3), id)
				return invoice.InvoiceResponse{ID: 3, CompCode: "ibm", Amt: req.Amt.StringFixed(2), AddDate: "2026-10-19"}, nil
			},
		}

		w := serve(setupRouter(svc), http.MethodPatch, "/invoices/3", `{"amt":"42.1"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"amt":"42.10"`)
	})

	t.Run("invalid id checked before body", func(t *testing.T) {
		w := serve(setupRouter(&fakeInvoiceService{}), http.MethodPatch, "/invoices/x", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid invoice id")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeInvoiceService{
			UpdateFn: func(ctx context.Context, id int64, req invoice.UpdateInvoiceRequest) (invoice.InvoiceResponse, error) {
				return invoice.InvoiceResponse{}, invoiceerrors.ErrInvoiceNotFound
			},
		}

		w := serve(setupRouter(svc), http.MethodPatch, "/invoices/3", `{"amt":1}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestInvoiceHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeInvoiceService{
			DeleteFn: func(ctx context.Context, id int64) error { return nil },
		}

		w := serve(setupRouter(svc), http.MethodDelete, "/invoices/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"Deleted."}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeInvoiceService{
			DeleteFn: func(ctx context.Context, id int64) error { return invoiceerrors.ErrInvoiceNotFound },
		}

		w := serve(setupRouter(svc), http.MethodDelete, "/invoices/9", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
