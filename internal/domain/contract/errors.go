package contract

import "errors"

var (
	ErrContractNotFound        = errors.New("contract not found")
	ErrOutsideContractValidity = errors.New("date falls outside the contract validity window")
)
