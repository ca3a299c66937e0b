package services

import (
	"context"
	"errors"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/Aman-parjapati/Ai-interview-platform/models"
)

// FirestoreClient wraps the firebase client used for interviews and
// response summaries.
type FirestoreClient struct {
	client *firestore.Client
}

var firestoreClient *FirestoreClient

// InitFirestore initializes the Firestore client. Credentials come from
// FIREBASE_CREDENTIALS_JSON, FIREBASE_CREDENTIALS_FILE or application
// default credentials, in that order.
func InitFirestore(ctx context.Context) (*FirestoreClient, error) {
	if firestoreClient != nil {
		return firestoreClient, nil
	}

	var app *firebase.App
	var err error

	if credJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON"); credJSON != "" {
		opt := option.WithCredentialsJSON([]byte(credJSON))
		app, err = firebase.NewApp(ctx, nil, opt)
	} else if credFile := os.Getenv("FIREBASE_CREDENTIALS_FILE"); credFile != "" {
		opt := option.WithCredentialsFile(credFile)
		app, err = firebase.NewApp(ctx, nil, opt)
	} else {
		app, err = firebase.NewApp(ctx, nil)
	}

	if err != nil {
		return nil, err
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	firestoreClient = &FirestoreClient{client: client}
	return firestoreClient, nil
}

func responsesCollection() string {
	if name := os.Getenv("FIRESTORE_RESPONSES_COLLECTION"); name != "" {
		return name
	}
	return "responses"
}

func interviewsCollection() string {
	if name := os.Getenv("FIRESTORE_INTERVIEWS_COLLECTION"); name != "" {
		return name
	}
	return "interviews"
}

// SaveResponse writes the terminal call summary and returns the new
// document id.
func (fc *FirestoreClient) SaveResponse(ctx context.Context, rec models.ResponseRecord) (string, error) {
	docID := uuid.New().String()
	ref := fc.client.Collection(responsesCollection()).Doc(docID)
	_, err := ref.Set(ctx, rec)
	return docID, err
}

// GetInterviewByID retrieves an interview definition.
func (fc *FirestoreClient) GetInterviewByID(ctx context.Context, interviewID string) (*models.Interview, error) {
	if interviewID == "" {
		return nil, errors.New("interview ID is required")
	}

	docSnap, err := fc.client.Collection(interviewsCollection()).Doc(interviewID).Get(ctx)
	if err != nil {
		return nil, err
	}
	if !docSnap.Exists() {
		return nil, errors.New("interview not found")
	}

	var interview models.Interview
	if err := docSnap.DataTo(&interview); err != nil {
		return nil, err
	}
	interview.ID = docSnap.Ref.ID

	return &interview, nil
}

// Close closes the Firestore client.
func (fc *FirestoreClient) Close() error {
	if fc.client != nil {
		return fc.client.Close()
	}
	return nil
}

// GetFirestoreClient returns the singleton instance of FirestoreClient.
func GetFirestoreClient(ctx context.Context) (*FirestoreClient, error) {
	if firestoreClient == nil {
		return InitFirestore(ctx)
	}
	return firestoreClient, nil
}
