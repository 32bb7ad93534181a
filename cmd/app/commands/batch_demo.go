package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/clubhouse/internal/app"
	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
	relationshipDomain "github.com/allisson/clubhouse/internal/relationship/domain"
	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
)

// RunBatchDemo creates a batch of member identities and chains follow
// relationships between them under a single authorization token. The token is
// revoked halfway through the batch, so later follow attempts fail; failures
// do not stop the batch, and the command reports a success/failure tally.
func RunBatchDemo(ctx context.Context, container *app.Container, writer io.Writer, users int) error {
	if users < 2 {
		return fmt.Errorf("users must be at least 2, got: %d", users)
	}

	identities, err := container.IdentityUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize identity use case: %w", err)
	}
	tokens, err := container.TokenUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize token use case: %w", err)
	}
	relationships, err := container.RelationshipUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize relationship use case: %w", err)
	}
	reports, err := container.ReportUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize report use case: %w", err)
	}

	fmt.Fprintf(writer, "== batch follow demo (%d users) ==\n", users)

	admin, err := identities.Create(ctx, &identityDomain.CreateIdentityInput{
		DisplayName: "operator",
		Permissions: []identityDomain.Permission{
			identityDomain.AuthorizeRelationshipsPermission,
			identityDomain.RevokeAnyTokenPermission,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}

	members := make([]uuid.UUID, 0, users)
	for i := 0; i < users; i++ {
		member, err := identities.Create(ctx, &identityDomain.CreateIdentityInput{
			DisplayName: fmt.Sprintf("member-%d", i+1),
		})
		if err != nil {
			return fmt.Errorf("failed to create member %d: %w", i+1, err)
		}
		members = append(members, member.ID)
	}

	token, err := tokens.Issue(ctx, &tokenDomain.IssueTokenInput{
		IssuerID: admin.ID,
		Scope:    tokenDomain.FollowAuthorizationScope,
		Lifetime: time.Hour,
	})
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	fmt.Fprintf(writer, "operator issued token %s\n", token.ID)

	// Revoke the token after this many follows to exercise the failure path
	revokeAfter := (users - 1) / 2

	var succeeded, failed int
	for i := 0; i < users-1; i++ {
		if i == revokeAfter {
			if err := tokens.Revoke(ctx, token.ID, admin.ID); err != nil {
				return fmt.Errorf("failed to revoke token: %w", err)
			}
			fmt.Fprintf(writer, "token revoked after %d follow(s)\n", succeeded)
		}

		_, err := relationships.CreateFollow(ctx, &relationshipDomain.CreateFollowInput{
			SourceID: members[i],
			TargetID: members[i+1],
			TokenID:  token.ID,
		})
		if err != nil {
			failed++
			fmt.Fprintf(writer, "follow %d -> %d failed: %v\n", i+1, i+2, err)
			continue
		}
		succeeded++
	}

	report, err := reports.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	fmt.Fprintf(writer, "batch complete: %d succeeded, %d failed\n", succeeded, failed)
	fmt.Fprintf(writer, "summary: identities=%d tokens=%d relationships=%d\n",
		report.Identities,
		report.Tokens.Total,
		report.TotalRelationships,
	)

	return nil
}
