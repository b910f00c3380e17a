package service

import (
	"errors"

	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"
)

// mapGatewayError converts a gateway client failure into the error surface
// exposed to callers.
func mapGatewayError(err error) error {
	var gwErr *ports.GatewayError
	if !errors.As(err, &gwErr) {
		return apperror.InternalError(err)
	}

	switch gwErr.Kind {
	case ports.GatewayErrTimeout:
		return apperror.ErrTimeout()
	case ports.GatewayErrConnection:
		return apperror.ErrNetwork(gwErr)
	case ports.GatewayErrStatus:
		return apperror.ErrGateway(gwErr.Status, gwErr.Message)
	default:
		return apperror.InternalError(gwErr)
	}
}
