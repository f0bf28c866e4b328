package leavebalanceerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrLeaveBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave balance not found",
		http.StatusNotFound,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"Insufficient leave balance",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidAllocation = apperror.New(
		apperror.CodeInvalidInput,
		"annual_leave and sick_leave must be zero or greater",
		http.StatusBadRequest,
	)
)
