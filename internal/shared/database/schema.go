package database

import _ "embed"

// Schema is the reference DDL for companies and invoices. The service never
// applies it; test harnesses use it to prepare a throwaway database.
//
//go:embed schema.sql
var Schema string
