// Package spreadsheet ingests the candidate and job workbooks and
// normalizes their heterogeneous rows into typed records. Column names
// vary between Chinese and English synonyms; resolution is driven by the
// ordered chains below so adding a synonym is a data change, not a code
// change.
package spreadsheet

import (
	"math"
	"strconv"
	"strings"

	"github.com/wenhao/airecruit/internal/recruit"
)

// Column synonym chains, tried strictly in order; the first present,
// non-empty cell wins and later matches are never merged in.
var (
	candidateColumns = map[string][]string{
		"id":             {"id", "ID"},
		"name":           {"姓名", "name"},
		"email":          {"邮箱", "email"},
		"phone":          {"电话", "phone"},
		"position":       {"岗位名称", "职位全称", "position"},
		"job_id":         {"岗位编号", "job_id"},
		"total":          {"面试总评分", "total_score"},
		"interviewed":    {"是否已面试（AI）", "是否已面试", "interviewed"},
		"interview_time": {"面试时间（AI问答完成时间）", "面试时间", "interview_time"},
		"experience":     {"工作经验", "experience"},
		"education":      {"学历", "education"},
		"skills":         {"技能", "skills"},
		"salary":         {"期望薪资", "薪资期望", "expected_salary"},
	}

	dimensionColumns = map[recruit.Dimension][]string{
		recruit.DimensionKnowledge:   {"Knowledge", "knowledge", "评价维度1（可修改）"},
		recruit.DimensionSkill:       {"Skill", "skill", "评价维度2（可修改）"},
		recruit.DimensionAbility:     {"Ability", "ability", "评价维度3（可修改）"},
		recruit.DimensionPersonality: {"Personality", "personality"},
		recruit.DimensionMotivation:  {"Motivation", "motivation"},
		recruit.DimensionValue:       {"Value", "value"},
	}

	jobColumns = map[string][]string{
		"id":              {"职位id", "id"},
		"title":           {"职位全称", "职位名称", "岗位名称", "职位", "岗位", "title", "job_title"},
		"department":      {"部门", "department", "dept"},
		"location":        {"工作地点", "location"},
		"salary":          {"薪资", "薪资范围", "工资", "salary", "salary_range"},
		"requirements":    {"职位要求", "岗位要求", "个人能力要求", "要求", "requirements", "job_requirements"},
		"description":     {"职位描述", "岗位描述", "其它补充说明", "描述", "description", "job_description"},
		"recruit_count":   {"招聘数量", "招聘人数", "人数", "count"},
		"publish_date":    {"职位发布时间", "发布时间", "创建时间", "publish_date"},
		"status":          {"该招聘状态-开启/关闭", "招聘状态", "状态", "status"},
		"recruiter":       {"招聘负责人", "recruiter"},
		"recruiter_email": {"负责人邮箱", "recruiter_email"},
	}
)

// Row is one spreadsheet row paired with its sheet's header index.
type Row struct {
	header map[string]int
	cells  []string
}

// NewRow pairs raw cells with a header index built by headerIndex.
func NewRow(header map[string]int, cells []string) Row {
	return Row{header: header, cells: cells}
}

// headerIndex maps trimmed column names to their positions.
func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, exists := idx[h]; !exists {
			idx[h] = i
		}
	}
	return idx
}

// lookup resolves a column chain: the first listed name whose cell is
// present and non-empty wins.
func (r Row) lookup(names []string) (string, bool) {
	for _, name := range names {
		col, ok := r.header[name]
		if !ok || col >= len(r.cells) {
			continue
		}
		if v := strings.TrimSpace(r.cells[col]); v != "" {
			return v, true
		}
	}
	return "", false
}

// stringField returns the resolved cell or a default when absent.
func (r Row) stringField(names []string, def string) string {
	if v, ok := r.lookup(names); ok {
		return v
	}
	return def
}

// floatField parses the resolved cell to a float, treating empty,
// non-numeric, NaN, and infinite cells as absent. Out-of-range finite
// values pass through untouched.
func (r Row) floatField(names []string) *float64 {
	v, ok := r.lookup(names)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// intField parses the resolved cell to an int, falling back to def.
func (r Row) intField(names []string, def int) int {
	v, ok := r.lookup(names)
	if !ok {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	// Tolerate numeric cells rendered as floats ("3.0").
	if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return def
}
