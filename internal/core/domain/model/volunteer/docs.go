// Package volunteer provides the pickup-provider profile aggregate.
//
// A volunteer can claim donations only while Active and available;
// CanAccept gates assignment with a ConflictError naming the blocking
// condition. TotalPickups is a derived aggregate owned by the donation
// completion transaction.
package volunteer
