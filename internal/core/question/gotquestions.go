package question

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/domain"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/errors"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/fetch"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/normalize"
)

const (
	gotQuestionsAPIBase  = "https://gotquestions.online/api"
	gotQuestionsSiteBase = "https://gotquestions.online"

	// Acceptance-rate band requested from the search API, in percent.
	takenFrom = 50
	takenTo   = 100

	// handoutPrefix marks handout material appended below the question text.
	handoutPrefix = "📎 "
)

// tierBand is the difficulty range and page-count ceiling the search API is
// queried with for one tier.
type tierBand struct {
	complexityFrom float64
	complexityTo   float64
	maxPages       int
}

var tierBands = map[Tier]tierBand{
	TierRandom: {complexityFrom: 0, complexityTo: 10, maxPages: 1000},
	TierEasy:   {complexityFrom: 0, complexityTo: 3.5, maxPages: 500},
	TierMedium: {complexityFrom: 3.5, complexityTo: 6.5, maxPages: 400},
	TierHard:   {complexityFrom: 6.5, complexityTo: 10, maxPages: 200},
}

type apiResponse struct {
	Items []apiQuestion `json:"items"`
}

type apiQuestion struct {
	ID           int64     `json:"id"`
	Text         string    `json:"text"`
	RazdatkaText string    `json:"razdatkaText"`
	RazdatkaPic  string    `json:"razdatkaPic"`
	Answer       string    `json:"answer"`
	Zachet       string    `json:"zachet"`
	Comment      string    `json:"comment"`
	Complexity   []float64 `json:"complexity"`
	AnswerPic    string    `json:"answerPic"`
	CommentPic   string    `json:"commentPic"`
}

// gotQuestions queries the gotquestions.online search API for one question in
// the requested difficulty tier, picking a random page and a random item.
type gotQuestions struct {
	client   *fetch.Client
	logger   *zerolog.Logger
	tier     Tier
	apiBase  string
	siteBase string
	rnd      *rand.Rand
}

func newGotQuestions(client *fetch.Client, tier Tier, logger *zerolog.Logger) *gotQuestions {
	return &gotQuestions{
		client:   client,
		logger:   logger,
		tier:     tier,
		apiBase:  gotQuestionsAPIBase,
		siteBase: gotQuestionsSiteBase,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // page choice, not crypto
	}
}

// QuestionURL returns the public page for a question served from the search
// API. Callers use it to link back to expired questions.
func QuestionURL(id int64) string {
	return fmt.Sprintf("%s/question/%d", gotQuestionsSiteBase, id)
}

func (g *gotQuestions) Source() Source { return SourceGotQuestions }

func (g *gotQuestions) LoadQuestion(ctx context.Context) (*domain.Question, error) {
	band, ok := tierBands[g.tier]
	if !ok {
		band = tierBands[TierMedium]
	}

	page := g.rnd.Intn(band.maxPages) + 1

	query := url.Values{}
	query.Set("complexityFrom", strconv.FormatFloat(band.complexityFrom, 'f', -1, 64))
	query.Set("complexityTo", strconv.FormatFloat(band.complexityTo, 'f', -1, 64))
	query.Set("takenFrom", strconv.Itoa(takenFrom))
	query.Set("takenTo", strconv.Itoa(takenTo))
	query.Set("page", strconv.Itoa(page))

	raw, err := g.client.Fetch(ctx, g.apiBase+"/questions/?"+query.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetch questions page: %w", err)
	}

	var resp apiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %w", errors.ErrParseFailed, err)
	}

	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: tier %s page %d", errors.ErrEmptyResult, g.tier, page)
	}

	item := resp.Items[g.rnd.Intn(len(resp.Items))]

	g.logger.Debug().
		Str("tier", string(g.tier)).
		Int("page", page).
		Int("items", len(resp.Items)).
		Int64("question_id", item.ID).
		Msg("Loaded question from search API")

	return g.mapQuestion(item), nil
}

func (g *gotQuestions) mapQuestion(item apiQuestion) *domain.Question {
	text := strings.TrimSpace(item.Text)

	if handout := strings.TrimSpace(item.RazdatkaText); handout != "" {
		if text == "" {
			text = handoutPrefix + handout
		} else {
			text += "\n\n" + handoutPrefix + handout
		}
	}

	q := &domain.Question{
		ID:     item.ID,
		Text:   text,
		Answer: strings.TrimSpace(item.Answer),
	}

	if pic := strings.TrimSpace(item.RazdatkaPic); pic != "" {
		q.QuestionPreview = []string{normalize.ResolveURL(pic, g.siteBase)}
	}

	var paragraphs []string

	if zachet := strings.TrimSpace(item.Zachet); zachet != "" {
		paragraphs = append(paragraphs, "Зачёт: "+zachet)
	}

	if comment := strings.TrimSpace(item.Comment); comment != "" {
		paragraphs = append(paragraphs, comment)
	}

	if len(item.Complexity) > 0 {
		paragraphs = append(paragraphs, fmt.Sprintf("Взято: %.1f%% · %s · [источник](%s/question/%d)",
			mean(item.Complexity), g.tier, g.siteBase, item.ID))
	}

	q.Description = strings.Join(paragraphs, "\n\n")

	if pic := strings.TrimSpace(item.AnswerPic); pic != "" {
		q.AnswerPreview = append(q.AnswerPreview, normalize.ResolveURL(pic, g.siteBase))
	}

	if pic := strings.TrimSpace(item.CommentPic); pic != "" {
		q.AnswerPreview = append(q.AnswerPreview, normalize.ResolveURL(pic, g.siteBase))
	}

	return q
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
