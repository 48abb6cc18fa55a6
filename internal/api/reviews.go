package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nikolayk812/shopledger/internal/domain"
)

const (
	minRating = 1
	maxRating = 5
)

func (c *Client) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	if productID == "" {
		return nil, fmt.Errorf("productID is empty")
	}

	var out []domain.Review
	err := c.do(ctx, request{op: "reviews.list", method: http.MethodGet, path: reviewsPath(productID)}, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) AverageRating(ctx context.Context, productID string) (float64, error) {
	if productID == "" {
		return 0, fmt.Errorf("productID is empty")
	}

	var out float64
	err := c.do(ctx, request{op: "reviews.average", method: http.MethodGet, path: reviewsPath(productID) + "/average-rating"}, &out)
	if err != nil {
		return 0, err
	}

	return out, nil
}

// ProductReviews loads the reviews of a product together with its average
// rating.
func (c *Client) ProductReviews(ctx context.Context, productID string) (domain.ReviewSummary, error) {
	reviews, err := c.ListReviews(ctx, productID)
	if err != nil {
		return domain.ReviewSummary{}, err
	}

	avg, err := c.AverageRating(ctx, productID)
	if err != nil {
		return domain.ReviewSummary{}, err
	}

	return domain.ReviewSummary{
		Reviews:       reviews,
		AverageRating: avg,
		ReviewCount:   len(reviews),
	}, nil
}

func (c *Client) AddReview(ctx context.Context, productID string, in domain.ReviewInput) (domain.Review, error) {
	if productID == "" {
		return domain.Review{}, fmt.Errorf("productID is empty")
	}

	return c.sendReview(ctx, "reviews.add", http.MethodPost, reviewsPath(productID), in)
}

func (c *Client) UpdateReview(ctx context.Context, reviewID string, in domain.ReviewInput) (domain.Review, error) {
	if reviewID == "" {
		return domain.Review{}, fmt.Errorf("reviewID is empty")
	}

	return c.sendReview(ctx, "reviews.update", http.MethodPut, "/reviews/"+url.PathEscape(reviewID), in)
}

func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	if reviewID == "" {
		return fmt.Errorf("reviewID is empty")
	}

	return c.do(ctx, request{op: "reviews.delete", method: http.MethodDelete, path: "/reviews/" + url.PathEscape(reviewID)}, nil)
}

func (c *Client) sendReview(ctx context.Context, op, method, path string, in domain.ReviewInput) (domain.Review, error) {
	if in.Rating < minRating || in.Rating > maxRating {
		return domain.Review{}, fmt.Errorf("rating[%d] must be between %d and %d", in.Rating, minRating, maxRating)
	}

	body, contentType, err := reviewForm(in)
	if err != nil {
		return domain.Review{}, fmt.Errorf("reviewForm: %w", err)
	}

	var out domain.Review
	err = c.do(ctx, request{op: op, method: method, path: path, rawBody: body, contentType: contentType}, &out)
	if err != nil {
		return domain.Review{}, err
	}

	return out, nil
}

// reviewForm encodes a review as multipart/form-data with rating, comment
// and one images part per uploaded file.
func reviewForm(in domain.ReviewInput) ([]byte, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("rating", strconv.Itoa(in.Rating)); err != nil {
		return nil, "", fmt.Errorf("mw.WriteField: %w", err)
	}
	if err := mw.WriteField("comment", in.Comment); err != nil {
		return nil, "", fmt.Errorf("mw.WriteField: %w", err)
	}

	for _, img := range in.Images {
		part, err := mw.CreateFormFile("images", img.Name)
		if err != nil {
			return nil, "", fmt.Errorf("mw.CreateFormFile: %w", err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", fmt.Errorf("part.Write: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("mw.Close: %w", err)
	}

	return buf.Bytes(), mw.FormDataContentType(), nil
}

func reviewsPath(productID string) string {
	return "/products/" + url.PathEscape(productID) + "/reviews"
}
