package employeeerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidExitDate = apperror.New(
		apperror.CodeInvalidInput,
		"exit_date must be a YYYY-MM-DD date on or after hire_date",
		http.StatusBadRequest,
	)
	ErrEmployeeAlreadyInactive = apperror.New(
		apperror.CodeInvalidState,
		"Employee is already inactive",
		http.StatusConflict,
	)
)
