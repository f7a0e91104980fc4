// Package services implements the driving port interfaces.
// Services contain the ranking logic: the similarity function and the
// per-domain scorers with their tie-break and ordering rules.
//
// Ranking is a pure function of (query, candidate set, recency hint);
// services keep no state between invocations.
package services
