// Package naming derives filesystem-safe directory slugs from album
// display titles.
//
// The only entry point is Normalize:
//
//	naming.Normalize("My Trip/Paris 2020!", false) // "my_trip_paris_2020"
//	naming.Normalize("Años 80", true)              // "años_80"
//
// Normalization is idempotent: feeding a slug back in returns it unchanged.
package naming
