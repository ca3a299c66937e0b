package main

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"

	"github.com/Aman-parjapati/Ai-interview-platform/models"
	"github.com/Aman-parjapati/Ai-interview-platform/services"
	"github.com/Aman-parjapati/Ai-interview-platform/session"
)

type interviewStore interface {
	GetInterviewByID(ctx context.Context, interviewID string) (*models.Interview, error)
}

type callRegistrar interface {
	RegisterWebCall(ctx context.Context, interviewerID string, dynamicData map[string]string) (services.RegisterCallResponse, error)
}

type questionGenerator interface {
	Generate(ctx context.Context, req services.GenerateQuestionsRequest) (string, error)
}

type jobSearcher interface {
	Search(ctx context.Context, position, country, location string) ([]models.Job, error)
}

// Server wires the HTTP surface to the session engine and the external
// collaborators.
type Server struct {
	cfg        *Config
	interviews interviewStore
	responses  session.ResponseStore
	retell     callRegistrar
	questions  questionGenerator
	jobs       jobSearcher
	classifier session.Classifier
	hub        *services.SessionHub
	sessions   *session.Manager
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: cannot retrieve env file, using environment variables")
	}

	cfg := NewConfig()
	ctx := context.Background()

	fs, err := services.InitFirestore(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer fs.Close()
	log.Println("Firestore initialized successfully")

	var classifier session.Classifier
	if cfg.ExpressionBaseURL != "" {
		classifier = services.NewExpressionClassifier(cfg.ExpressionBaseURL)
	} else {
		log.Println("EXPRESSION_API_BASE_URL not set, emotion sampling disabled")
	}

	manager := session.NewManager(cfg.CallIdleTimeout)
	go manager.Sweep(cfg.SweepInterval)
	defer manager.Stop()

	srv := &Server{
		cfg:        cfg,
		interviews: fs,
		responses:  fs,
		retell:     services.NewRetellClient(cfg.RetellAPIKey, cfg.RetellBaseURL),
		questions:  services.NewQuestionGenerator(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel),
		jobs:       services.NewJobsClient(cfg.JobsBaseURL),
		classifier: classifier,
		hub:        services.NewSessionHub(),
		sessions:   manager,
	}

	app := srv.Routes()
	app.Run(":" + cfg.Port)
}

func (s *Server) Routes() *gin.Engine {
	app := gin.Default()
	app.Use(AuthMiddleware(s.cfg.SessionSecret))

	app.POST("/api/generate-interview-questions", s.handleGenerateQuestions)
	app.POST("/api/register-call", s.handleRegisterCall)
	app.POST("/api/retell-webhook", s.handleCallWebhook)
	app.GET("/api/jobs", s.handleJobSearch)
	app.GET("/ws/:call_id", s.handleSessionSocket)

	return app
}

func (s *Server) handleGenerateQuestions(c *gin.Context) {
	log.Println("[INFO] generate-interview-questions request received")

	if s.cfg.GroqAPIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "GROQ_API_KEY missing"})
		return
	}

	var req services.GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid request body"})
		return
	}

	text, err := s.questions.Generate(c.Request.Context(), req)
	if err != nil {
		log.Printf("[ERROR] generate-interview-questions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (s *Server) handleRegisterCall(c *gin.Context) {
	var body struct {
		InterviewID string `json:"interview_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.InterviewID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "interview_id is required"})
		return
	}

	interview, err := s.interviews.GetInterviewByID(c.Request.Context(), body.InterviewID)
	if err != nil {
		log.Printf("[ERROR] loading interview %s: %v", body.InterviewID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "interview not found"})
		return
	}

	questions := make([]string, 0, len(interview.Questions))
	for _, q := range interview.Questions {
		questions = append(questions, q.Question)
	}

	callInfo, err := s.retell.RegisterWebCall(c.Request.Context(), interview.InterviewerID, map[string]string{
		"questions": strings.Join(questions, ", "),
	})
	if err != nil {
		// The call is never started without a valid credential.
		log.Printf("[ERROR] registering call for interview %s: %v", interview.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot register call"})
		return
	}

	sess := session.New(interview.ID, callInfo.CallID, s.responses, s.classifier, s.cfg.SampleInterval)
	sess.SetUpdateFunc(s.hub.Broadcast)
	s.sessions.Add(sess)

	c.JSON(http.StatusOK, gin.H{
		"access_token": callInfo.AccessToken,
		"call_id":      callInfo.CallID,
	})
}

func (s *Server) handleCallWebhook(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
		return
	}

	ev, err := models.ParseCallEvent(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, ok := s.sessions.Get(ev.CallID)
	if !ok {
		log.Printf("Event %s for unknown call: %s", ev.Event, ev.CallID)
		c.JSON(http.StatusNotFound, gin.H{"error": "call not found"})
		return
	}

	switch ev.Event {
	case models.EventCallStarted:
		sess.HandleStarted()
	case models.EventCallEnded:
		sess.HandleEnded(c.Request.Context())
		s.sessions.Remove(ev.CallID)
	case models.EventTranscriptUpdate:
		sess.HandleTranscript(ev.Transcript)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleJobSearch(c *gin.Context) {
	position := c.Query("position")
	country := c.DefaultQuery("country", "PK")
	location := c.Query("location")

	jobs, err := s.jobs.Search(c.Request.Context(), position, country, location)
	if err != nil {
		log.Printf("[ERROR] job search: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch jobs"})
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	c.JSON(http.StatusOK, jobs)
}

func (s *Server) handleSessionSocket(c *gin.Context) {
	callID := c.Param("call_id")

	sess, ok := s.sessions.Get(callID)
	if !ok {
		log.Printf("Connection attempt for unknown call: %s", callID)
		c.JSON(http.StatusNotFound, gin.H{"error": "call not found"})
		return
	}

	upgrader := websocket.Upgrader{}
	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Error upgrading connection: %v", err)
		return
	}

	client := s.hub.Attach(callID, conn)
	go client.WritePump()
	sess.AttachVideo()

	defer func() {
		sess.DetachVideo()
		s.hub.Detach(client)
	}()

	// Initial state so the page can render before the first change.
	s.hub.Broadcast(sess.Snapshot())

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			log.Printf("Connection closed for call %s: %v", callID, err)
			break
		}

		switch messageType {
		case websocket.BinaryMessage:
			sess.SubmitFrame(data)
		case websocket.TextMessage:
			var ev models.ClientEvent
			if err := json.Unmarshal(data, &ev); err != nil {
				log.Printf("Error unmarshaling client event: %v", err)
				continue
			}
			if ev.Type == "visibility" {
				sess.ObserveVisibility(ev.State)
			}
		}
	}
}
