package constants

import (
	"fmt"
	"strings"
)

// RequestStatus is the review state of a sponsorship request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

var AllRequestStatuses = []RequestStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
}

func (s RequestStatus) Valid() bool {
	for _, known := range AllRequestStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s RequestStatus) String() string { return string(s) }

func ParseRequestStatus(s string) (RequestStatus, error) {
	v := RequestStatus(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("invalid status %q (want pending, approved or rejected)", s)
	}
	return v, nil
}
