// Package grading 作业与测验的自动评分
package grading

// MaxAssignmentScore 单道作业题的满分
const MaxAssignmentScore = 2.0

// scoreStep 匹配百分比达到 percent 时得 score，按阈值从高到低排列
type scoreStep struct {
	percent int64
	score   float64
}

var scoreSteps = []scoreStep{
	{100, 2.0},
	{90, 1.8},
	{80, 1.6},
	{70, 1.4},
	{60, 1.2},
	{50, 1.0},
	{40, 0.8},
	{30, 0.6},
	{20, 0.4},
	{10, 0.2},
}

// positionMatches 逐位比较两个字符串（按 Unicode 码点），返回相同位置字符相等的个数和较长者的长度
func positionMatches(submitted, reference string) (matches, maxLength int) {
	a := []rune(submitted)
	b := []rune(reference)

	maxLength = len(a)
	if len(b) > maxLength {
		maxLength = len(b)
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return matches, maxLength
}

// PercentageMatch 返回 0-100 的匹配百分比，两个空串为 0
func PercentageMatch(submitted, reference string) float64 {
	matches, maxLength := positionMatches(submitted, reference)
	if maxLength == 0 {
		return 0
	}
	return float64(matches) / float64(maxLength) * 100
}

// ScoreAssignment 作业题得分，取值 0 到 2。
// 阈值比较使用整数交叉相乘，7/10 恰好等于 70%。
func ScoreAssignment(submitted, reference string) float64 {
	matches, maxLength := positionMatches(submitted, reference)
	if maxLength == 0 || matches == 0 {
		return 0
	}

	m, n := int64(matches), int64(maxLength)
	for _, step := range scoreSteps {
		if m*100 >= step.percent*n {
			return step.score
		}
	}
	return 0.1
}

// ScoreQuiz 选项完全一致得 1 分，否则 0 分
func ScoreQuiz(submitted, referenceOption string) float64 {
	if submitted == referenceOption {
		return 1
	}
	return 0
}

