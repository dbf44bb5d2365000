// Package ranking orders players for the MVP report.
//
// Rank produces two orderings over the same player list: descending points,
// truncated to the requested count, and descending overall score, whose first
// three entries are the best, second and third place players. Both sorts are
// stable so players with equal keys keep their source order.
package ranking
