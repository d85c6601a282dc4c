// Package pickup provides the PickupRequest aggregate root linking a
// volunteer's offer to a food donation.
//
// A request moves Pending -> Accepted -> InProgress -> Completed, with
// Cancelled reachable from any non-terminal status. Each transition stamps
// its timestamp exactly once. The status string values ("Pending",
// "Accepted", "InProgress", "Completed", "Cancelled") are part of the
// persisted external contract.
package pickup
