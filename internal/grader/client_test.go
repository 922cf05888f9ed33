package grader

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tosoham/ResumeGrader/internal/model"
)

const fullResponseBody = `{
	"success": true,
	"file_id": "3e9f6f0a-6e1d-4a3e-9f6b-1c6f0a3e9f6b",
	"filename": "resume.pdf",
	"grading_result": {
		"overall_score": 72.5,
		"section_scores": {
			"personal_info": 80,
			"experience": 52.5,
			"education": 65,
			"skills": 90,
			"projects": 75
		},
		"strengths": ["Clear identification with name: Jane Doe"],
		"improvements": ["Add work experience or internships to strengthen profile"],
		"detailed_feedback": "Good resume foundation with room for enhancement in specific areas.",
		"parsing_method": "ai_assisted",
		"parsed_data": {
			"personal_info": {"name": "Jane Doe", "email": "jane@example.com"},
			"skills": ["Go", "Python"],
			"education": [{"institution": "Example University", "degree": "B.Tech", "gpa": "3.8"}]
		}
	}
}`

// writeTestResume creates a small PDF-like file for upload tests
func writeTestResume(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\ntest resume content"), 0o644))
	return path
}

func TestClient_Analyze_GradeRoute(t *testing.T) {
	resumePath := writeTestResume(t)

	var (
		gotPath    string
		gotMethod  string
		fileParts  int
		fieldNames []string
		gotContent []byte
		requests   int
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotPath = r.URL.Path
		gotMethod = r.Method

		require.NoError(t, r.ParseMultipartForm(10<<20))
		for name, headers := range r.MultipartForm.File {
			fieldNames = append(fieldNames, name)
			fileParts += len(headers)
			file, err := headers[0].Open()
			require.NoError(t, err)
			gotContent, err = io.ReadAll(file)
			require.NoError(t, err)
			file.Close()
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fullResponseBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	report, err := client.Analyze(context.Background(), resumePath, model.ModeGrade)
	require.NoError(t, err)

	// Exactly one POST carrying exactly one file part under the "file" field
	assert.Equal(t, 1, requests)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, RouteGrade, gotPath)
	assert.Equal(t, 1, fileParts)
	assert.Equal(t, []string{FileFieldName}, fieldNames)
	assert.Equal(t, []byte("%PDF-1.4\ntest resume content"), gotContent)

	// The body is stored as returned, no transformation
	require.NotNil(t, report.GradingResult)
	assert.Equal(t, "72.5", report.GradingResult.OverallScoreText())
	assert.Equal(t, "52.5", report.GradingResult.SectionScoreText("experience"))
	assert.Equal(t, []string{"Clear identification with name: Jane Doe"}, report.GradingResult.Strengths)
	assert.Equal(t, "ai_assisted", report.GradingResult.ParsingMethod)

	parsed := report.Parsed()
	require.NotNil(t, parsed)
	assert.Equal(t, "Jane Doe", parsed.PersonalInfo.Name)
	assert.Equal(t, []string{"Go", "Python"}, parsed.Skills)
	require.Len(t, parsed.Education, 1)
	assert.Equal(t, "3.8", parsed.Education[0].GPA)
}

func TestClient_Analyze_ParseRoute(t *testing.T) {
	resumePath := writeTestResume(t)

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "parsed_data": {"skills": ["Go"]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	report, err := client.Analyze(context.Background(), resumePath, model.ModeParse)
	require.NoError(t, err)

	assert.Equal(t, RouteParse, gotPath)
	require.NotNil(t, report.Parsed())
	assert.Equal(t, []string{"Go"}, report.Parsed().Skills)
	assert.Nil(t, report.Grading())
}

func TestClient_Analyze_ServerError(t *testing.T) {
	resumePath := writeTestResume(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "Only PDF files are supported"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	report, err := client.Analyze(context.Background(), resumePath, model.ModeGrade)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "Only PDF files are supported")
}

func TestClient_Analyze_MalformedBody(t *testing.T) {
	resumePath := writeTestResume(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	report, err := client.Analyze(context.Background(), resumePath, model.ModeGrade)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClient_Analyze_SchemaViolation(t *testing.T) {
	resumePath := writeTestResume(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"grading_result": {"overall_score": "excellent"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Analyze(context.Background(), resumePath, model.ModeGrade)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClient_Analyze_MissingFile(t *testing.T) {
	client := NewClient("http://localhost:1", time.Second)
	_, err := client.Analyze(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"), model.ModeGrade)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestClient_CheckHealth(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, RouteHealth, r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"status": "healthy"}`))
	}))
	defer healthy.Close()

	client := NewClient(healthy.URL, 5*time.Second)
	assert.NoError(t, client.CheckHealth(context.Background()))

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer broken.Close()

	client = NewClient(broken.URL, 5*time.Second)
	err := client.CheckHealth(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
}
