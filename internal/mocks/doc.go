// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes a function field per interface method for custom
// behavior, default return values for the common case, and call tracking
// for verification.
//
// Usage:
//
//	import "github.com/phrazzld/ankigen/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    gen := &mocks.MockTextGenerator{
//	        GenerateFn: func(ctx context.Context, prompt string) (string, error) {
//	            return "Q: What is a bit?\nA: A binary digit.", nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
