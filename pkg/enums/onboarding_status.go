package enums

import "fmt"

// OnboardingStatus tracks where a pharmacy sits in the activation pipeline.
type OnboardingStatus string

const (
	OnboardingStatusPending  OnboardingStatus = "pending"
	OnboardingStatusActive   OnboardingStatus = "active"
	OnboardingStatusRejected OnboardingStatus = "rejected"
)

var validOnboardingStatuses = []OnboardingStatus{
	OnboardingStatusPending,
	OnboardingStatusActive,
	OnboardingStatusRejected,
}

// String implements fmt.Stringer.
func (s OnboardingStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OnboardingStatus.
func (s OnboardingStatus) IsValid() bool {
	for _, candidate := range validOnboardingStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseOnboardingStatus converts raw input into an OnboardingStatus.
func ParseOnboardingStatus(value string) (OnboardingStatus, error) {
	for _, candidate := range validOnboardingStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid onboarding status %q", value)
}
