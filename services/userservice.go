package services

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskreminder/model"
)

func GetUserDataByUserid(ctx context.Context, firestoreClient *firestore.Client, userID string) (*model.User, error) {
	doc, err := firestoreClient.Collection("Users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.New("failed to parse user data")
	}
	return &user, nil
}
