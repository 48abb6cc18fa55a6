package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/spf13/cobra"
)

func newReviewsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Read and write product reviews",
	}

	var in domain.ReviewInput
	var images []string

	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Review a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadImages(&in, images); err != nil {
				return err
			}
			review, err := a.client.AddReview(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), review)
		},
	}

	update := &cobra.Command{
		Use:   "update <review-id>",
		Short: "Replace a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadImages(&in, images); err != nil {
				return err
			}
			review, err := a.client.UpdateReview(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), review)
		},
	}

	for _, c := range []*cobra.Command{add, update} {
		c.Flags().IntVar(&in.Rating, "rating", 0, "rating from 1 to 5")
		c.Flags().StringVar(&in.Comment, "comment", "", "review text")
		c.Flags().StringSliceVar(&images, "image", nil, "image file to attach, repeatable")
		_ = c.MarkFlagRequired("rating")
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <product-id>",
			Short: "Print the reviews of a product with its average rating",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				summary, err := a.client.ProductReviews(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), summary)
			},
		},
		add,
		update,
		&cobra.Command{
			Use:   "delete <review-id>",
			Short: "Delete a review",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.DeleteReview(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "review %s deleted\n", args[0])
				return err
			},
		},
	)

	return cmd
}

func loadImages(in *domain.ReviewInput, paths []string) error {
	for _, p := range paths {
		data, err := os.ReadFile(filepath.Clean(p))
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}
		in.Images = append(in.Images, domain.ReviewImage{Name: filepath.Base(p), Data: data})
	}
	return nil
}
