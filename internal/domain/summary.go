package domain

// Summary holds the dashboard running totals. Only verified donation money
// counts; membership is member fees plus pre-seeded user amounts.
type Summary struct {
	Donations    int64 `json:"donations"`
	Membership   int64 `json:"membership"`
	Expenses     int64 `json:"expenses"`
	Remaining    int64 `json:"remaining"`
	MembersCount int32 `json:"membersCount"`
}

// PublicStats is the unauthenticated subset of the summary.
type PublicStats struct {
	TotalDonations int64 `json:"totalDonations"`
	TotalExpenses  int64 `json:"totalExpenses"`
	ActiveMembers  int32 `json:"activeMembers"`
}
