package page

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if a scheduler or Follow goroutine outlives its test
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
