package evaluations

import (
	"database/sql"
	"fmt"

	"github.com/langdrift/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(e *models.Evaluation) error {
	err := s.db.QueryRow(
		`INSERT INTO evaluations (expected_language, response_text, line_accuracy, line_pass_rate,
		        word_pass_rate, language_confidence, total_lines, lines_with_errors,
		        lines_with_word_errors, weighted_score, simple_score, max_score, probe_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, created_at`,
		e.ExpectedLanguage, e.ResponseText, e.LineAccuracy, e.LinePassRate,
		e.WordPassRate, e.LanguageConfidence, e.TotalLines, e.LinesWithErrors,
		e.LinesWithWordErrors, e.WeightedScore, e.SimpleScore, e.MaxScore, e.ProbeID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

func (s *Store) Get(id int64) (*models.Evaluation, error) {
	var e models.Evaluation
	err := s.db.QueryRow(
		`SELECT id, expected_language, response_text, line_accuracy, line_pass_rate,
		        word_pass_rate, language_confidence, total_lines, lines_with_errors,
		        lines_with_word_errors, weighted_score, simple_score, max_score, probe_id, created_at
		 FROM evaluations WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.ExpectedLanguage, &e.ResponseText, &e.LineAccuracy, &e.LinePassRate,
		&e.WordPassRate, &e.LanguageConfidence, &e.TotalLines, &e.LinesWithErrors,
		&e.LinesWithWordErrors, &e.WeightedScore, &e.SimpleScore, &e.MaxScore, &e.ProbeID, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get evaluation: %w", err)
	}
	return &e, nil
}

func (s *Store) List(language string, limit, offset int) ([]models.Evaluation, error) {
	query := `SELECT id, expected_language, response_text, line_accuracy, line_pass_rate,
	                 word_pass_rate, language_confidence, total_lines, lines_with_errors,
	                 lines_with_word_errors, weighted_score, simple_score, max_score, probe_id, created_at
	          FROM evaluations`
	args := []interface{}{}
	if language != "" {
		query += ` WHERE expected_language = $1`
		args = append(args, language)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	var out []models.Evaluation
	for rows.Next() {
		var e models.Evaluation
		if err := rows.Scan(&e.ID, &e.ExpectedLanguage, &e.ResponseText, &e.LineAccuracy, &e.LinePassRate,
			&e.WordPassRate, &e.LanguageConfidence, &e.TotalLines, &e.LinesWithErrors,
			&e.LinesWithWordErrors, &e.WeightedScore, &e.SimpleScore, &e.MaxScore, &e.ProbeID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CreateProbe inserts a probe row before its samples are generated.
func (s *Store) CreateProbe(p *models.Probe) error {
	err := s.db.QueryRow(
		`INSERT INTO probes (prompt, expected_language, model_used, samples)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		p.Prompt, p.ExpectedLanguage, p.ModelUsed, p.Samples,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("create probe: %w", err)
	}
	return nil
}

// CompleteProbe records the aggregate score once all samples are evaluated.
func (s *Store) CompleteProbe(probeID int64, samples int, meanWeighted float64) error {
	_, err := s.db.Exec(
		`UPDATE probes SET samples = $1, mean_weighted_score = $2 WHERE id = $3`,
		samples, meanWeighted, probeID,
	)
	return err
}
