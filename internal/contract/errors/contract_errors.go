package contracterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrContractNotFound = apperror.New(
		apperror.CodeNotFound,
		"contract not found",
		http.StatusNotFound,
	)
	ErrInvalidContractID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid contract id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidContractType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid contract type",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must be after start_date",
		http.StatusBadRequest,
	)
	ErrEndDateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"end_date is required for fixed-term contracts",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"salary must be a positive amount",
		http.StatusBadRequest,
	)
	ErrInvalidNoticeDays = apperror.New(
		apperror.CodeInvalidInput,
		"renewal_notice_days must be zero or greater",
		http.StatusBadRequest,
	)
	ErrInvalidDays = apperror.New(
		apperror.CodeInvalidInput,
		"days must be zero or greater",
		http.StatusBadRequest,
	)
	ErrInvalidParty = apperror.New(
		apperror.CodeInvalidInput,
		"invalid signing party",
		http.StatusBadRequest,
	)
	ErrCDIRenewal = apperror.New(
		apperror.CodeInvalidInput,
		"permanent (CDI) contracts cannot be renewed",
		http.StatusBadRequest,
	)
	ErrNoEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"contract has no end date",
		http.StatusBadRequest,
	)
	ErrNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"only draft contracts can be submitted",
		http.StatusConflict,
	)
	ErrNotEditable = apperror.New(
		apperror.CodeInvalidState,
		"signed or expired contracts cannot be edited",
		http.StatusConflict,
	)
	ErrContractExpired = apperror.New(
		apperror.CodeInvalidState,
		"contract has expired",
		http.StatusConflict,
	)
)
