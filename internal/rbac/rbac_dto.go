package rbac

import "go-hrms/internal/domain"

type EnforceRequest = domain.EnforceRequest

type EnforceResponse = domain.EnforceResponse

// Permission names used by the HTTP routes, as resource:action.
const (
	ResourceEmployee     = "employee"
	ResourceLeave        = "leave"
	ResourceLeaveBalance = "leave_balance"
	ResourceContract     = "contract"
	ResourceRole         = "role"

	ActionRead           = "read"
	ActionCreate         = "create"
	ActionUpdate         = "update"
	ActionApproveManager = "approve_manager"
	ActionApproveRH      = "approve_rh"
	ActionCancel         = "cancel"
	ActionSign           = "sign"
	ActionRenew          = "renew"
	ActionManage         = "manage"
)
