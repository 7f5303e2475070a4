package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rscript/internal/core/domain"
)

func TestComputeID_FileDependsOnPathOnly(t *testing.T) {
	a := domain.FileInput{Name: "hello", AbsPath: "/home/user/hello.rs", Content: "fn main() {}"}
	b := domain.FileInput{Name: "hello", AbsPath: "/home/user/hello.rs", Content: "fn main() { println!(\"changed\"); }"}
	deps := []domain.Dependency{{Name: "regex", Version: "1"}}

	idA := domain.ComputeID(a, nil)
	assert.Equal(t, idA, domain.ComputeID(a, nil))
	assert.Equal(t, idA, domain.ComputeID(b, nil))
	assert.Equal(t, idA, domain.ComputeID(a, deps))
	assert.Len(t, idA, domain.IDDigestLen)

	other := domain.FileInput{Name: "hello", AbsPath: "/tmp/hello.rs"}
	assert.NotEqual(t, idA, domain.ComputeID(other, nil))
}

func TestComputeID_ExprDependsOnDepsAndText(t *testing.T) {
	expr := domain.ExprInput{Content: "1 + 2", WorkDir: "/a"}
	sameExprElsewhere := domain.ExprInput{Content: "1 + 2", WorkDir: "/b"}

	id := domain.ComputeID(expr, nil)
	assert.Equal(t, id, domain.ComputeID(sameExprElsewhere, nil))
	assert.Len(t, id, domain.IDDigestLen)

	assert.NotEqual(t, id, domain.ComputeID(domain.ExprInput{Content: "1 + 3"}, nil))
	assert.NotEqual(t, id, domain.ComputeID(expr, []domain.Dependency{{Name: "time", Version: "*"}}))
}

func TestComputeID_PermutationInvariant(t *testing.T) {
	expr := domain.ExprInput{Content: "now()"}

	first, err := domain.ParseDependencies([]string{"time=0.3", "regex", "serde=1.0"})
	require.NoError(t, err)
	second, err := domain.ParseDependencies([]string{"serde=1.0", "time=0.3", "regex"})
	require.NoError(t, err)

	assert.Equal(t, domain.ComputeID(expr, first), domain.ComputeID(expr, second))
}

func TestComputeID_KnownDigest(t *testing.T) {
	expr := domain.ExprInput{Content: "x"}
	assert.Equal(t, "d1cba928c536712a2b109fb1", domain.ComputeID(expr, []domain.Dependency{{Name: "a", Version: "1"}}))

	file := domain.FileInput{Name: "hello", AbsPath: "/home/user/hello.rs"}
	assert.Equal(t, "ab60d3b6a7fd0a075ed9a19a", domain.ComputeID(file, nil))
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ef46db3751d8e999", domain.HashContent(""))
	assert.Len(t, domain.HashContent("fn main() {}"), 16)
	assert.NotEqual(t, domain.HashContent("a"), domain.HashContent("b"))
}
