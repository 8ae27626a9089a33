// Package platform holds the response shaping shared by the platform
// adapters in its sub-packages. Each sub-package translates a trigger from
// one cloud vendor into a call against a domain.Invocation and shapes the
// result into the response that vendor expects.
package platform
