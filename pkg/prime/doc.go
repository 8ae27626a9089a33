// Package prime contains the compute kernel used by the prime number
// benchmark functions. The kernel counts upward from zero, classifies each
// candidate with trial division, and stops once the requested number of
// primes has been found.
package prime
