package services

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/yigit/coursemap/internal/app/models"
	"github.com/yigit/coursemap/internal/app/models/dto"
	"github.com/yigit/coursemap/internal/app/pipeline"
	"github.com/yigit/coursemap/internal/pkg/apperrors"
	"github.com/yigit/coursemap/internal/pkg/fuzzy"
)

const (
	// SearchLimit is the number of candidates scored before the cutoff applies
	SearchLimit = 10
	// SearchCutoff is the minimum weighted ratio of a search hit
	SearchCutoff = 60
)

type sectionDef struct {
	key    string
	title  string
	column string
}

var courseSections = []sectionDef{
	{"prerequisites", "מקצועות קדם:", models.ColumnPrerequisites},
	{"blocked", "מקצועות חסומים:", models.ColumnBlocked},
	{"noCredit", "מקצועות ללא זיכוי נוסף:", models.ColumnNoCredit},
	{"noCreditContained", "מקצועות ללא זיכוי נוסף (מוכלים):", models.ColumnNoCreditContained},
	{"paired", "מקצועות צמודים:", models.ColumnPaired},
}

// CatalogService defines the read operations of the course catalog
type CatalogService interface {
	Search(query string) dto.SearchResponse
	Course(code string) (*dto.CourseView, error)
	CourseByTag(tag string) (*dto.CourseView, error)
	References(code string) ([]string, error)
	Len() int
}

// catalogServiceImpl implements CatalogService over an immutable table
type catalogServiceImpl struct {
	byCode    map[string]*models.Record
	tags      []string
	tagToCode map[string]string
	codeWidth int
}

// NewCatalogService indexes table. The first row of a code wins when the
// catalog still has duplicates.
func NewCatalogService(table *models.Table, codeWidth int) CatalogService {
	s := &catalogServiceImpl{
		byCode:    make(map[string]*models.Record, table.Len()),
		tagToCode: make(map[string]string, table.Len()),
		codeWidth: codeWidth,
	}
	for _, row := range table.Rows {
		code := row.String(models.ColumnCode)
		if _, ok := s.byCode[code]; ok {
			continue
		}
		s.byCode[code] = row

		tag := row.String(models.ColumnTag)
		if tag == "" {
			tag = models.Tag(code, row.String(models.ColumnName))
		}
		if _, ok := s.tagToCode[tag]; !ok {
			s.tagToCode[tag] = code
			s.tags = append(s.tags, tag)
		}
	}
	return s
}

// Len returns the number of distinct courses
func (s *catalogServiceImpl) Len() int {
	return len(s.byCode)
}

// Search returns up to SearchLimit tags scoring at least SearchCutoff
func (s *catalogServiceImpl) Search(query string) dto.SearchResponse {
	resp := dto.SearchResponse{Query: query, Hits: []dto.SearchHit{}}
	for _, m := range fuzzy.Extract(query, s.tags, SearchLimit, SearchCutoff) {
		resp.Hits = append(resp.Hits, dto.SearchHit{
			Tag:   m.Choice,
			Code:  s.tagToCode[m.Choice],
			Score: m.Score,
		})
	}
	return resp
}

func (s *catalogServiceImpl) lookup(code string) (*models.Record, bool) {
	code = strings.TrimSpace(code)
	if row, ok := s.byCode[code]; ok {
		return row, true
	}
	row, ok := s.byCode[pipeline.NormalizeCode(code, s.codeWidth)]
	return row, ok
}

// Course builds the page of the course with the given code
func (s *catalogServiceImpl) Course(code string) (*dto.CourseView, error) {
	row, ok := s.lookup(code)
	if !ok {
		return nil, apperrors.NewCourseNotFoundError(code)
	}
	return s.view(row), nil
}

// CourseByTag accepts a full tag, as returned by Search, or a bare code as used in deep links
func (s *catalogServiceImpl) CourseByTag(tag string) (*dto.CourseView, error) {
	if code, ok := s.tagToCode[tag]; ok {
		return s.Course(code)
	}
	return s.Course(codeOf(tag))
}

// References lists the codes of every linkable course on a course page
func (s *catalogServiceImpl) References(code string) ([]string, error) {
	view, err := s.Course(code)
	if err != nil {
		return nil, err
	}
	var refs []string
	for _, section := range view.Sections {
		for _, item := range section.Items {
			if item.Linkable && item.Code != view.Code {
				refs = append(refs, item.Code)
			}
		}
	}
	return pipeline.Unique(refs), nil
}

func (s *catalogServiceImpl) view(row *models.Record) *dto.CourseView {
	code := row.String(models.ColumnCode)
	v := &dto.CourseView{
		Code:     code,
		Name:     display(row, models.ColumnName),
		Tag:      row.String(models.ColumnTag),
		Faculty:  display(row, models.ColumnFaculty),
		Points:   display(row, models.ColumnPoints),
		Syllabus: display(row, models.ColumnSyllabus),
		Sections: []dto.ReferenceSection{},
	}
	if v.Tag == "" {
		v.Tag = models.Tag(code, v.Name)
	}

	for _, def := range courseSections {
		refs := row.Strings(def.column)
		if len(refs) == 0 {
			continue
		}
		section := dto.ReferenceSection{Key: def.key, Title: def.title}
		for _, ref := range refs {
			section.Items = append(section.Items, s.reference(ref))
		}
		v.Sections = append(v.Sections, section)
	}
	return v
}

// reference makes a list entry linkable when it already is a tag or names a known course
func (s *catalogServiceImpl) reference(ref string) dto.ReferenceItem {
	code := codeOf(ref)
	item := dto.ReferenceItem{Label: code, Code: code}
	switch {
	case strings.Contains(ref, models.TagSeparator):
		item.Label, item.Linkable = ref, true
	default:
		if row, ok := s.byCode[code]; ok {
			item.Label, item.Linkable = row.String(models.ColumnTag), true
			if item.Label == "" {
				item.Label = models.Tag(code, row.String(models.ColumnName))
			}
		}
	}
	if item.Linkable {
		item.Href = "/?tag=" + url.QueryEscape(code)
	}
	return item
}

func codeOf(ref string) string {
	code, _, _ := strings.Cut(ref, models.TagSeparator)
	return strings.TrimSpace(code)
}

func display(row *models.Record, column string) string {
	v, _ := row.Get(column)
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
