package spreadsheet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/wenhao/airecruit/internal/recruit"
)

// timeLayouts are the timestamp formats seen across the source
// workbooks, tried in order.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01-02-06",
}

// Loader reads the candidate and job workbooks from disk. Each Load call
// reopens the file so edits made between refreshes are picked up.
type Loader struct {
	candidatePath string
	jobPath       string
	now           func() time.Time
}

// NewLoader builds a Loader over the two workbook paths.
func NewLoader(candidatePath, jobPath string) *Loader {
	return &Loader{candidatePath: candidatePath, jobPath: jobPath, now: time.Now}
}

// LoadCandidates reads and normalizes every candidate row.
func (l *Loader) LoadCandidates(ctx context.Context) ([]recruit.CandidateRecord, error) {
	rows, err := readRows(ctx, l.candidatePath)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	candidates := make([]recruit.CandidateRecord, 0, len(rows))
	for i, row := range rows {
		candidates = append(candidates, l.normalizeCandidate(row, i))
	}
	return candidates, nil
}

// LoadJobs reads and normalizes every job posting row.
func (l *Loader) LoadJobs(ctx context.Context) ([]recruit.JobRecord, error) {
	rows, err := readRows(ctx, l.jobPath)
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}
	jobs := make([]recruit.JobRecord, 0, len(rows))
	for i, row := range rows {
		jobs = append(jobs, normalizeJob(row, i))
	}
	return jobs, nil
}

// readRows opens a workbook and returns its first sheet's data rows
// paired with the header index.
func readRows(ctx context.Context, path string) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(raw) < 2 {
		return nil, nil
	}

	header := headerIndex(raw[0])
	rows := make([]Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		if isBlank(cells) {
			continue
		}
		rows = append(rows, NewRow(header, cells))
	}
	return rows, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// normalizeCandidate maps one raw row to a CandidateRecord. Missing
// identity cells get deterministic per-row defaults so every record keeps
// a usable identity; other missing strings get the shared placeholder.
func (l *Loader) normalizeCandidate(row Row, index int) recruit.CandidateRecord {
	rec := recruit.CandidateRecord{
		ID:             int64(row.intField(candidateColumns["id"], index+1)),
		Name:           row.stringField(candidateColumns["name"], fmt.Sprintf("candidate-%d", index+1)),
		Email:          row.stringField(candidateColumns["email"], fmt.Sprintf("candidate%d@example.com", index+1)),
		Phone:          row.stringField(candidateColumns["phone"], recruit.NotProvided),
		Position:       row.stringField(candidateColumns["position"], recruit.NotProvided),
		Experience:     row.stringField(candidateColumns["experience"], recruit.NotProvided),
		Education:      row.stringField(candidateColumns["education"], recruit.NotProvided),
		Skills:         row.stringField(candidateColumns["skills"], recruit.NotProvided),
		ExpectedSalary: row.stringField(candidateColumns["salary"], recruit.NotProvided),
		ExplicitTotal:  row.floatField(candidateColumns["total"]),
		Interviewed:    isAffirmative(row.stringField(candidateColumns["interviewed"], "")),
	}
	if jobID := row.floatField(candidateColumns["job_id"]); jobID != nil {
		id := int64(*jobID)
		rec.JobID = &id
	}
	rec.CreatedAt = l.parseTime(row.stringField(candidateColumns["interview_time"], ""))
	for dim, chain := range dimensionColumns {
		if score := row.floatField(chain); score != nil {
			rec.Dimensions.Set(dim, *score)
		}
	}
	return rec
}

// normalizeJob maps one raw row to a JobRecord.
func normalizeJob(row Row, index int) recruit.JobRecord {
	job := recruit.JobRecord{
		ID:             int64(row.intField(jobColumns["id"], index+1)),
		Title:          row.stringField(jobColumns["title"], recruit.NotProvided),
		Department:     row.stringField(jobColumns["department"], recruit.NotProvided),
		Location:       row.stringField(jobColumns["location"], recruit.NotProvided),
		SalaryRange:    row.stringField(jobColumns["salary"], recruit.NotProvided),
		Requirements:   row.stringField(jobColumns["requirements"], recruit.NotProvided),
		Description:    row.stringField(jobColumns["description"], recruit.NotProvided),
		Status:         parseJobStatus(row.stringField(jobColumns["status"], "")),
		RecruitCount:   row.intField(jobColumns["recruit_count"], 1),
		Recruiter:      row.stringField(jobColumns["recruiter"], recruit.NotProvided),
		RecruiterEmail: row.stringField(jobColumns["recruiter_email"], recruit.NotProvided),
	}
	if v, ok := row.lookup(jobColumns["publish_date"]); ok {
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				job.PublishedAt = t
				break
			}
		}
	}
	return job
}

// isAffirmative reports whether an interviewed-flag cell marks the
// candidate as having gone through the AI interview.
func isAffirmative(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "是", "yes", "y", "true", "1", "已面试":
		return true
	}
	return false
}

// parseJobStatus maps a status cell to open or closed, defaulting to open
// since an unlabeled posting is still live.
func parseJobStatus(v string) recruit.JobStatus {
	v = strings.TrimSpace(v)
	switch {
	case strings.Contains(v, "关闭"), strings.Contains(v, "暂停"),
		strings.EqualFold(v, "closed"), strings.EqualFold(v, "paused"):
		return recruit.JobStatusClosed
	default:
		return recruit.JobStatusOpen
	}
}

// parseTime parses an interview timestamp, falling back to the load time
// so recency ordering stays total.
func (l *Loader) parseTime(v string) time.Time {
	v = strings.TrimSpace(v)
	if v != "" {
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t
			}
		}
	}
	return l.now()
}
