// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EmployeeForm is a snapshot of the employee form taken at submission time.
// It replaces reading page items one by one: callers build it once and pass it
// to the submission step, which never mutates it.
type EmployeeForm struct {
	// Name is the employee name (x01).
	Name string `json:"name"`

	// HireDate is the hire date exactly as entered (x02). The format is owned
	// by the server-side process, the client does not parse it.
	HireDate string `json:"hire_date"`

	// Salary is the salary exactly as entered (x03).
	Salary string `json:"salary"`

	// ApplicationID is the platform application identifier (x04, p_flow_id).
	ApplicationID string `json:"application_id"`

	// SessionID is the platform session identifier (x05, p_instance).
	SessionID string `json:"session_id"`

	// File is the path of the selected document. Empty means nothing is
	// selected.
	File string `json:"file"`
}

// HasFile reports whether a file path was selected on the form.
func (f EmployeeForm) HasFile() bool {
	return f.File != ""
}
