package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"finai/internal/finance"
	"finai/internal/llm"
	"finai/internal/logger"
	"finai/internal/models"
	"finai/internal/util"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const maxOCRTextLen = 10000

// ReceiptItem is one expense suggested from receipt text. It is not stored.
type ReceiptItem struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"` // YYYY-MM-DD or empty
	Description string          `json:"description"`
	Type        string          `json:"type"`
}

type ReceiptService struct {
	completer llm.Completer
	timeout   time.Duration
	log       zerolog.Logger
}

func NewReceiptService(completer llm.Completer, timeout time.Duration, log zerolog.Logger) *ReceiptService {
	return &ReceiptService{completer: completer, timeout: timeout, log: logger.WithComponent(log, logger.ComponentReceipt)}
}

var (
	tableCharsRe = regexp.MustCompile(`[|│─┼┌┐└┘╔╗╚╝═]+`)
	rulerRe      = regexp.MustCompile(`[-_=]{2,}`)
	blankLinesRe = regexp.MustCompile(`\n{2,}`)
	spacesRe     = regexp.MustCompile(`[ \t]{2,}`)
	fenceRe      = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
)

// cleanOCR strips table drawing characters and collapses whitespace.
func cleanOCR(raw string) string {
	s := tableCharsRe.ReplaceAllString(raw, " ")
	s = rulerRe.ReplaceAllString(s, " ")
	s = blankLinesRe.ReplaceAllString(s, "\n")
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func receiptPrompt(ocrText string) string {
	return fmt.Sprintf(`You are an expert receipt parser.
Analyze the following receipt text and extract expense items as a JSON array with fields:
amount (number), category, date, description, type (always "expense").

The receipt text may contain OCR noise. Ignore store headers, totals, taxes and payment lines.
category MUST be one of: %s.
date MUST be YYYY-MM-DD; use "" when the receipt has no clear date.

Return ONLY the JSON array, no markdown.

Receipt text:
%s`, strings.Join(finance.Categories()[models.TypeExpense], ", "), ocrText)
}

// Parse asks the completion service to turn OCR text into expense suggestions.
// Output that is not a JSON array is an upstream error.
func (s *ReceiptService) Parse(ctx context.Context, ocrText string) ([]ReceiptItem, error) {
	text := cleanOCR(ocrText)
	if text == "" {
		return nil, validationf("ocr_text is required")
	}
	if utf8.RuneCountInString(text) > maxOCRTextLen {
		return nil, validationf("ocr_text too long (max %d characters)", maxOCRTextLen)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.completer.Complete(ctx, []llm.Message{{Role: llm.RoleUser, Content: receiptPrompt(text)}})
	if err != nil {
		s.log.Error().Err(err).Msg("receipt completion failed")
		return nil, upstream("receipt parser is unavailable, please try again later", err)
	}

	items, err := decodeReceiptItems(raw)
	if err != nil {
		s.log.Warn().Err(err).Int("len", len(raw)).Msg("receipt parser returned malformed output")
		return nil, upstream("receipt parser returned invalid data", err)
	}
	return items, nil
}

func decodeReceiptItems(raw string) ([]ReceiptItem, error) {
	body := strings.TrimSpace(raw)
	if m := fenceRe.FindStringSubmatch(body); m != nil {
		body = m[1]
	}
	if !strings.HasPrefix(body, "[") {
		return nil, fmt.Errorf("expected a JSON array")
	}

	var parsed []ReceiptItem
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	out := make([]ReceiptItem, 0, len(parsed))
	for _, it := range parsed {
		if !it.Amount.IsPositive() {
			continue
		}
		it.Amount = it.Amount.Round(2)
		it.Type = models.TypeExpense
		it.Description = strings.TrimSpace(it.Description)
		if c, ok := finance.NormalizeCategory(it.Category, models.TypeExpense); ok {
			it.Category = c
		} else {
			it.Category = "Other"
		}
		if d, err := util.ParseDate(strings.TrimSpace(it.Date)); err == nil {
			it.Date = d.Format("2006-01-02")
		} else {
			it.Date = ""
		}
		out = append(out, it)
	}
	return out, nil
}
