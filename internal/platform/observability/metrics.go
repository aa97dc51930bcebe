package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuestionsLoaded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_questions_loaded_total",
		Help: "The total number of question load attempts by source and status",
	}, []string{"source", "status"})

	QuestionLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quiz_question_load_duration_seconds",
		Help:    "Duration of question source loads",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})

	AnswerReveals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_answer_reveals_total",
		Help: "The total number of answer reveal attempts by outcome",
	}, []string{"outcome"})

	UpdatesReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_updates_total",
		Help: "The total number of processed bot updates by kind",
	}, []string{"kind"})

	WebhookRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_webhook_requests_total",
		Help: "The total number of webhook HTTP requests by status",
	}, []string{"status"})
)
