// Package donation provides the FoodDonation aggregate root and its
// lifecycle state machine.
//
// The package includes:
//   - Donation: the aggregate managing identity, food attributes, and lifecycle
//   - Status: a state machine enforcing the legal transitions
//
// Key business rules:
//   - Donations are posted in Available status by a restaurant
//   - A volunteer claim moves Available -> Assigned; cancellation reverts it
//   - Pickup and delivery move Assigned -> PickedUp -> Completed
//   - The expiry sweep moves Available/Assigned -> Expired once the expiry
//     date has passed
//   - Completed and Expired are terminal; every other transition attempt
//     fails with an InvalidStateError naming the current state and event
//
// The status string values ("Available", "Assigned", "PickedUp",
// "Completed", "Expired") are part of the persisted external contract.
package donation
