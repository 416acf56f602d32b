// Package service exposes romanization as an Encore API: on-demand
// conversion, lookup of a previously stored result, and a feedback
// endpoint that replays a user correction back into the in-process
// RuleStore as a manual-provenance rule.
//
// Grounded on
// _examples/dbryar-govhack2025/api/services/transliterate/transliterate.go,
// adapted from its ad hoc script-pair mapper to this module's lattice-based
// Uroman engine.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"encore.dev/storage/sqldb"

	uroman "github.com/dbryar/uroman-go"
)

var engine = uroman.New()

var db = sqldb.NewDatabase("romanization", sqldb.DatabaseConfig{
	Migrations: "./migrations",
})

// RomanizeRequest is a request to romanize a piece of text.
type RomanizeRequest struct {
	Text  string `json:"text"`            // text to romanize
	Lcode string `json:"lcode,omitempty"` // ISO 639-3 language code, optional
}

// RomanizeResponse is the stored, cacheable result of a romanization.
type RomanizeResponse struct {
	ID         string `json:"id"`
	InputText  string `json:"input_text"`
	OutputText string `json:"output_text"`
	Lcode      string `json:"lcode,omitempty"`
}

// FeedbackRequest carries a user's correction for a previously returned
// romanization.
type FeedbackRequest struct {
	RomanizationID  string `json:"romanization_id"`
	SuggestedOutput string `json:"suggested_output"`
}

// Romanize converts text to its Latin romanization, caching the result.
//
//encore:api public method=POST path=/romanize
func Romanize(ctx context.Context, req *RomanizeRequest) (*RomanizeResponse, error) {
	if err := validateRomanizeRequest(req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	if cached, err := getCachedRomanization(ctx, req.Text, req.Lcode); err == nil && cached != nil {
		_, updateErr := db.Exec(ctx, `
			UPDATE romanizations
			SET usage_count = usage_count + 1, updated_at = NOW()
			WHERE id = $1
		`, cached.ID)
		if updateErr != nil {
			// Usage-count bump is best-effort; the cached result is still
			// valid even if this update fails.
		}
		return cached, nil
	}

	outputText := engine.RomanizeString(req.Text, req.Lcode)

	result, err := storeRomanization(ctx, req.Text, outputText, req.Lcode)
	if err != nil {
		return nil, fmt.Errorf("failed to store romanization: %w", err)
	}
	return result, nil
}

// GetRomanization retrieves a previously stored romanization by ID.
//
//encore:api public method=GET path=/romanize/:id
func GetRomanization(ctx context.Context, id string) (*RomanizeResponse, error) {
	if !isValidUUID(id) {
		return nil, errors.New("invalid romanization ID format")
	}

	var result RomanizeResponse
	err := db.QueryRow(ctx, `
		SELECT id, input_text, output_text, lcode
		FROM romanizations
		WHERE id = $1
	`, id).Scan(&result.ID, &result.InputText, &result.OutputText, &result.Lcode)

	if err == sql.ErrNoRows {
		return nil, errors.New("romanization not found")
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &result, nil
}

// SubmitFeedback records a user's corrected romanization and folds it back
// into the live RuleStore as a whole-string manual rule, so future calls
// on the same input prefer the correction (spec.md §6 "feedback loop").
//
//encore:api public method=POST path=/romanize/:id/feedback
func SubmitFeedback(ctx context.Context, id string, req *FeedbackRequest) error {
	if err := validateFeedbackRequest(req); err != nil {
		return fmt.Errorf("invalid feedback: %w", err)
	}

	original, err := GetRomanization(ctx, id)
	if err != nil {
		return fmt.Errorf("invalid romanization ID: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO romanization_feedback (romanization_id, suggested_output)
		VALUES ($1, $2)
	`, id, req.SuggestedOutput)
	if err != nil {
		return fmt.Errorf("failed to store feedback: %w", err)
	}

	engine.LearnCorrection(original.InputText, req.SuggestedOutput)
	return nil
}

func getCachedRomanization(ctx context.Context, text, lcode string) (*RomanizeResponse, error) {
	var result RomanizeResponse
	err := db.QueryRow(ctx, `
		SELECT id, input_text, output_text, lcode
		FROM romanizations
		WHERE input_text = $1 AND lcode = $2
		ORDER BY usage_count DESC, updated_at DESC
		LIMIT 1
	`, text, lcode).Scan(&result.ID, &result.InputText, &result.OutputText, &result.Lcode)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func storeRomanization(ctx context.Context, inputText, outputText, lcode string) (*RomanizeResponse, error) {
	var id string
	err := db.QueryRow(ctx, `
		INSERT INTO romanizations (input_text, output_text, lcode)
		VALUES ($1, $2, $3)
		RETURNING id
	`, inputText, outputText, lcode).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &RomanizeResponse{ID: id, InputText: inputText, OutputText: outputText, Lcode: lcode}, nil
}

func validateRomanizeRequest(req *RomanizeRequest) error {
	if req == nil {
		return errors.New("request cannot be nil")
	}
	if strings.TrimSpace(req.Text) == "" {
		return errors.New("text cannot be empty")
	}
	if len(req.Text) > 10000 {
		return errors.New("text too long (maximum 10,000 characters)")
	}
	if !utf8.ValidString(req.Text) {
		return errors.New("text contains invalid UTF-8 sequences")
	}
	return nil
}

func validateFeedbackRequest(req *FeedbackRequest) error {
	if req == nil {
		return errors.New("feedback request cannot be nil")
	}
	if strings.TrimSpace(req.SuggestedOutput) == "" {
		return errors.New("suggested_output cannot be empty")
	}
	if len(req.SuggestedOutput) > 10000 {
		return errors.New("suggested_output too long")
	}
	return nil
}

func isValidUUID(uuid string) bool {
	if len(uuid) != 36 {
		return false
	}
	if uuid[8] != '-' || uuid[13] != '-' || uuid[18] != '-' || uuid[23] != '-' {
		return false
	}
	for i, r := range uuid {
		if i == 8 || i == 13 || i == 18 || i == 23 {
			continue
		}
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return false
		}
	}
	return true
}
