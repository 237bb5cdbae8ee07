package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DonationsVerified counts accountant verifications that actually
	// transitioned a donation (idempotent re-verifies excluded).
	DonationsVerified = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngobooks_donations_verified_total",
		Help: "Number of donations verified by the accountant.",
	})

	MembersMaterialized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngobooks_members_materialized_total",
		Help: "Number of members created from approved, paid requests.",
	})

	SequenceRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngobooks_membership_no_retries_total",
		Help: "Membership number assignments retried after a uniqueness conflict.",
	})
)
