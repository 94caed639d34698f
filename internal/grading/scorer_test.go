package grading

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreAssignment(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		reference string
		want      float64
	}{
		{"identical", "photosynthesis", "photosynthesis", 2.0},
		{"both empty", "", "", 0},
		{"empty reference", "abc", "", 0},
		{"empty submission", "", "abc", 0},
		{"nine of ten", "abcdefghiX", "abcdefghij", 1.8},
		{"seven of ten is exactly seventy", "abcdefgXYZ", "abcdefghij", 1.4},
		{"half", "abXY", "abcd", 1.0},
		{"one of three", "aXY", "abc", 0.6},
		{"one of eleven", "aXXXXXXXXXX", "abcdefghijk", 0.1},
		{"no position matches", "xyz", "abc", 0},
		{"longer submission", "abcdef", "abc", 1.0},
		{"ninety nine percent", strings.Repeat("a", 99) + "b", strings.Repeat("a", 100), 1.8},
		{"multibyte runes", "你好世界", "你好世界", 2.0},
		{"multibyte partial", "你好吗", "你好世", 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreAssignment(tt.submitted, tt.reference))
		})
	}
}

func TestScoreAssignmentIsPositional(t *testing.T) {
	// 相同字符错位不计分
	assert.Equal(t, 0.0, ScoreAssignment("bca", "abc"))
	assert.Equal(t, 0.0, ScoreAssignment(" abc", "abc"))
}

func TestScoreAssignmentMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abcdef")

	for round := 0; round < 200; round++ {
		n := rng.Intn(30) + 1
		reference := make([]rune, n)
		for i := range reference {
			reference[i] = alphabet[rng.Intn(len(alphabet))]
		}

		// 逐位把错误字符改为正确字符，得分不应下降
		submitted := make([]rune, n)
		for i := range submitted {
			submitted[i] = 'z'
		}
		prev := ScoreAssignment(string(submitted), string(reference))
		for _, i := range rng.Perm(n) {
			submitted[i] = reference[i]
			score := ScoreAssignment(string(submitted), string(reference))
			assert.GreaterOrEqual(t, score, prev, "reference=%q submitted=%q", string(reference), string(submitted))
			prev = score
		}
		assert.Equal(t, MaxAssignmentScore, prev)
	}
}

func TestScoreAssignmentRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := randomString(rng, rng.Intn(12))
		b := randomString(rng, rng.Intn(12))
		score := ScoreAssignment(a, b)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, MaxAssignmentScore)
		assert.Equal(t, score, ScoreAssignment(a, b))
	}
}

func randomString(rng *rand.Rand, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('a' + rng.Intn(3)))
	}
	return sb.String()
}

func TestPercentageMatch(t *testing.T) {
	assert.Equal(t, 0.0, PercentageMatch("", ""))
	assert.Equal(t, 100.0, PercentageMatch("abc", "abc"))
	assert.Equal(t, 50.0, PercentageMatch("ab", "abcd"))
	assert.InDelta(t, 33.333, PercentageMatch("a", "abc"), 0.001)
}

func TestScoreQuiz(t *testing.T) {
	assert.Equal(t, 1.0, ScoreQuiz("A", "A"))
	assert.Equal(t, 0.0, ScoreQuiz("A", "B"))
	assert.Equal(t, 0.0, ScoreQuiz("a", "A"))
	assert.Equal(t, 0.0, ScoreQuiz("", "A"))
}
