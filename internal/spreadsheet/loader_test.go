package spreadsheet

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/wenhao/airecruit/internal/recruit"
)

// writeWorkbook saves a single-sheet xlsx with the given header and rows
// and returns its path.
func writeWorkbook(t *testing.T, name string, header []string, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoadCandidates_NormalizesChineseHeaders(t *testing.T) {
	path := writeWorkbook(t, "candidates.xlsx",
		[]string{"姓名", "邮箱", "岗位名称", "面试总评分", "是否已面试（AI）", "期望薪资", "Knowledge"},
		[][]string{
			{"张三", "zhang@example.com", "后端工程师", "85", "是", "1.5万", "90"},
		},
	)
	loader := NewLoader(path, "")

	candidates, err := loader.LoadCandidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	c := candidates[0]
	assert.Equal(t, "张三", c.Name)
	assert.Equal(t, "zhang@example.com", c.Email)
	assert.Equal(t, "后端工程师", c.Position)
	require.NotNil(t, c.ExplicitTotal)
	assert.Equal(t, 85.0, *c.ExplicitTotal)
	assert.True(t, c.Interviewed)
	assert.Equal(t, "1.5万", c.ExpectedSalary)
	require.NotNil(t, c.Dimensions.Knowledge)
	assert.Equal(t, 90.0, *c.Dimensions.Knowledge)
}

func TestLoadCandidates_EnglishSynonymsAndDefaults(t *testing.T) {
	path := writeWorkbook(t, "candidates.xlsx",
		[]string{"name", "email"},
		[][]string{
			{"Ada", "ada@example.com"},
			{"", ""}, // fully defaulted identity
		},
	)
	loader := NewLoader(path, "")

	candidates, err := loader.LoadCandidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Ada", candidates[0].Name)
	assert.Equal(t, recruit.NotProvided, candidates[0].Position)
	assert.Equal(t, recruit.NotProvided, candidates[0].ExpectedSalary)
	assert.Nil(t, candidates[0].ExplicitTotal)
	assert.False(t, candidates[0].Interviewed)

	assert.Equal(t, "candidate-2", candidates[1].Name)
	assert.Equal(t, "candidate2@example.com", candidates[1].Email)
}

func TestLoadCandidates_SkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, "candidates.xlsx",
		[]string{"姓名"},
		[][]string{{"a"}, {"  "}, {"b"}},
	)
	loader := NewLoader(path, "")

	candidates, err := loader.LoadCandidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "a", candidates[0].Name)
	assert.Equal(t, "b", candidates[1].Name)
}

func TestLoadCandidates_NonNumericScoreCellsAreAbsent(t *testing.T) {
	path := writeWorkbook(t, "candidates.xlsx",
		[]string{"姓名", "面试总评分", "Skill"},
		[][]string{{"a", "优秀", "NaN"}},
	)
	loader := NewLoader(path, "")

	candidates, err := loader.LoadCandidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Nil(t, candidates[0].ExplicitTotal)
	assert.Nil(t, candidates[0].Dimensions.Skill)
}

func TestLoadCandidates_MissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "absent.xlsx"), "")

	_, err := loader.LoadCandidates(context.Background())

	assert.Error(t, err)
}

func TestLoadCandidates_ParsesInterviewTime(t *testing.T) {
	path := writeWorkbook(t, "candidates.xlsx",
		[]string{"姓名", "面试时间（AI问答完成时间）"},
		[][]string{{"a", "2025-01-20 10:30:00"}},
	)
	loader := NewLoader(path, "")

	candidates, err := loader.LoadCandidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	want := time.Date(2025, 1, 20, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, want, candidates[0].CreatedAt)
}

func TestLoadJobs_NormalizesRow(t *testing.T) {
	path := writeWorkbook(t, "jobs.xlsx",
		[]string{"职位全称", "部门", "薪资范围", "该招聘状态-开启/关闭", "招聘数量", "职位发布时间"},
		[][]string{
			{"后端工程师", "平台组", "15K-25K", "开启", "3", "2025-01-10"},
			{"测试工程师", "质量组", "面议", "关闭", "", ""},
		},
	)
	loader := NewLoader("", path)

	jobs, err := loader.LoadJobs(context.Background())

	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "后端工程师", jobs[0].Title)
	assert.Equal(t, "平台组", jobs[0].Department)
	assert.Equal(t, "15K-25K", jobs[0].SalaryRange)
	assert.Equal(t, recruit.JobStatusOpen, jobs[0].Status)
	assert.Equal(t, 3, jobs[0].RecruitCount)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), jobs[0].PublishedAt)

	assert.Equal(t, recruit.JobStatusClosed, jobs[1].Status)
	assert.Equal(t, 1, jobs[1].RecruitCount)
}

func TestLoadJobs_TitleSynonymChainIsOrdered(t *testing.T) {
	// Both synonyms present: the earlier chain entry wins even though the
	// later one also has a value.
	path := writeWorkbook(t, "jobs.xlsx",
		[]string{"岗位名称", "职位全称"},
		[][]string{{"short name", "full name"}},
	)
	loader := NewLoader("", path)

	jobs, err := loader.LoadJobs(context.Background())

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "full name", jobs[0].Title)
}

func TestLoadJobs_SkipsEmptyCellThenFallsThrough(t *testing.T) {
	path := writeWorkbook(t, "jobs.xlsx",
		[]string{"职位全称", "职位名称"},
		[][]string{{"", "fallback"}},
	)
	loader := NewLoader("", path)

	jobs, err := loader.LoadJobs(context.Background())

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "fallback", jobs[0].Title)
}
