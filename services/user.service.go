// Package services contains the database operations of the platform
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/thelifesavers/backend/connect"
	"github.com/thelifesavers/backend/models"
	"github.com/thelifesavers/backend/otp"
	"github.com/thelifesavers/backend/validate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrOTPConsumed is returned when the reset code was already used by a
// concurrent request
var ErrOTPConsumed = fmt.Errorf("reset otp already consumed")

// User contains all the user related services
type User struct {
	Conn *connect.Connector
}

// Create is a function that is used to create a new user in the database
func (u *User) Create(ctx context.Context, user models.User) (models.User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := u.Conn.Users().InsertOne(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

// Exists is a function that is used to check wether a user with the given
// email or mobile number is already registered; a single query, the caller
// is not told which of the two fields collided
func (u *User) Exists(ctx context.Context, email, mobileNumber string) (bool, error) {
	err := u.Conn.Users().FindOne(ctx, bson.M{
		"$or": bson.A{
			bson.M{"email": email},
			bson.M{"mobileNumber": mobileNumber},
		},
	}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// GetByIdentifier is a function that is used to get a user by email or
// mobile number with a single lookup
func (u *User) GetByIdentifier(ctx context.Context, identifier string) (user models.User, err error) {
	err = u.Conn.Users().FindOne(ctx, bson.M{
		"$or": bson.A{
			bson.M{"email": identifier},
			bson.M{"mobileNumber": identifier},
		},
	}).Decode(&user)

	return user, err
}

// GetByID is a function that is used to get a user by their id
func (u *User) GetByID(ctx context.Context, id primitive.ObjectID) (user models.User, err error) {
	err = u.Conn.Users().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	return user, err
}

// GetByEmail is a function that is used to get a user by their email address
func (u *User) GetByEmail(ctx context.Context, email string) (user models.User, err error) {
	err = u.Conn.Users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

// Update is a function that is used to update user details; only the
// supplied fields are overwritten
func (u *User) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (user models.User, err error) {
	updates["updatedAt"] = time.Now().UTC()

	err = u.Conn.Users().FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)

	return user, err
}

// FilterQuery contains the optional equality filters of the directory
type FilterQuery struct {
	BloodGroup string
	Country    string
	State      string
	District   string
	City       string
}

// Filter is a function that is used to list users matching the given
// filters; when exclude is set the matching user is left out of the result
func (u *User) Filter(ctx context.Context, exclude *primitive.ObjectID, filter FilterQuery) ([]models.User, error) {
	query := bson.M{}
	if exclude != nil {
		query["_id"] = bson.M{"$ne": *exclude}
	}
	if filter.BloodGroup != "" {
		query["bloodGroup"] = filter.BloodGroup
	}
	if filter.Country != "" {
		query["country"] = filter.Country
	}
	if filter.State != "" {
		query["state"] = filter.State
	}
	if filter.District != "" {
		query["district"] = filter.District
	}
	if filter.City != "" {
		query["city"] = filter.City
	}

	cursor, err := u.Conn.Users().Find(ctx, query)
	if err != nil {
		return nil, err
	}

	var users []models.User
	err = cursor.All(ctx, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// GetByResetOTP is a function that both validates the reset code and
// locates the user to update with a single lookup
func (u *User) GetByResetOTP(ctx context.Context, email, code string) (user models.User, err error) {
	err = u.Conn.Users().FindOne(ctx, bson.M{
		"email":                email,
		"resetPasswordOtp":     code,
		"resetPasswordExpires": bson.M{"$gt": time.Now().UTC()},
	}).Decode(&user)

	return user, err
}

// CompleteReset sets the new password hash and clears both OTP fields with
// a single conditional update keyed on the code, so a concurrent reset
// with the same code cannot fire twice
func (u *User) CompleteReset(ctx context.Context, id primitive.ObjectID, code, passwordHash string) error {
	result, err := u.Conn.Users().UpdateOne(
		ctx,
		bson.M{"_id": id, "resetPasswordOtp": code},
		bson.M{
			"$set": bson.M{
				"password":  passwordHash,
				"updatedAt": time.Now().UTC(),
			},
			"$unset": bson.M{
				"resetPasswordOtp":     "",
				"resetPasswordExpires": "",
			},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrOTPConsumed
	}

	return nil
}

// LinkReview sets the back-reference from the user to their review
func (u *User) LinkReview(ctx context.Context, userID, reviewID primitive.ObjectID) error {
	_, err := u.Conn.Users().UpdateOne(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"reviewId": reviewID}},
	)

	return err
}

// ClearReviewRef removes the back-reference of whichever user points at
// the given review; the owning user is looked up by the reference itself
func (u *User) ClearReviewRef(ctx context.Context, reviewID primitive.ObjectID) error {
	_, err := u.Conn.Users().UpdateOne(
		ctx,
		bson.M{"reviewId": reviewID},
		bson.M{"$unset": bson.M{"reviewId": ""}},
	)

	return err
}

// FixInvalidMobileNumbers is a one off data fix that rewrites every user
// whose mobile number is not a valid E.164 number to the fallback number
func (u *User) FixInvalidMobileNumbers(ctx context.Context, fallback string) (int64, error) {
	if !validate.IsMobile(fallback) {
		return 0, fmt.Errorf("fallback mobile number %q is not valid", fallback)
	}

	result, err := u.Conn.Users().UpdateMany(
		ctx,
		bson.M{"mobileNumber": bson.M{"$not": primitive.Regex{Pattern: `^\+?[1-9]\d{1,14}$`}}},
		bson.M{"$set": bson.M{"mobileNumber": fallback}},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}

// ResetOTPStore adapts the persisted reset OTP fields of the user
// document to the otp.Store contract so that code generation and expiry
// are shared with the email verification flow
type ResetOTPStore struct {
	Conn *connect.Connector
}

// Put stores the code and its expiry on the user document keyed by email
func (r *ResetOTPStore) Put(ctx context.Context, email, code string, expiresAt time.Time) error {
	result, err := r.Conn.Users().UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"resetPasswordOtp":     code,
			"resetPasswordExpires": expiresAt,
		}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

// Get reads the live code and expiry from the user document
func (r *ResetOTPStore) Get(ctx context.Context, email string) (string, time.Time, error) {
	var user models.User
	err := r.Conn.Users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", time.Time{}, otp.ErrNoEntry
		}

		return "", time.Time{}, err
	}

	if user.ResetPasswordOtp == "" {
		return "", time.Time{}, otp.ErrNoEntry
	}

	return user.ResetPasswordOtp, user.ResetPasswordExpires, nil
}

// Delete clears both OTP fields from the user document
func (r *ResetOTPStore) Delete(ctx context.Context, email string) error {
	_, err := r.Conn.Users().UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$unset": bson.M{
			"resetPasswordOtp":     "",
			"resetPasswordExpires": "",
		}},
	)

	return err
}
