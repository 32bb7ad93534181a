package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/allisson/clubhouse/internal/app"
	identityDomain "github.com/allisson/clubhouse/internal/identity/domain"
	relationshipDomain "github.com/allisson/clubhouse/internal/relationship/domain"
	tokenDomain "github.com/allisson/clubhouse/internal/token/domain"
)

// RunDemo runs the reference follow flow against a fresh in-memory system:
// an operator identity issues a follow-authorization token, a member uses it
// to follow another member, the token is revoked, and a second follow attempt
// is shown to fail.
func RunDemo(ctx context.Context, container *app.Container, writer io.Writer) error {
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

	fmt.Fprintln(writer, "== token-gated follow demo ==")

	admin, err := identities.Create(ctx, &identityDomain.CreateIdentityInput{
		DisplayName: "admin",
		Permissions: []identityDomain.Permission{
			identityDomain.AuthorizeRelationshipsPermission,
			identityDomain.RevokeAnyTokenPermission,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	alice, err := identities.Create(ctx, &identityDomain.CreateIdentityInput{DisplayName: "alice"})
	if err != nil {
		return fmt.Errorf("failed to create alice: %w", err)
	}

	bob, err := identities.Create(ctx, &identityDomain.CreateIdentityInput{DisplayName: "bob"})
	if err != nil {
		return fmt.Errorf("failed to create bob: %w", err)
	}

	fmt.Fprintf(writer, "registered identities: admin=%s alice=%s bob=%s\n", admin.ID, alice.ID, bob.ID)

	token, err := tokens.Issue(ctx, &tokenDomain.IssueTokenInput{
		IssuerID: admin.ID,
		Scope:    tokenDomain.FollowAuthorizationScope,
		Lifetime: 2 * time.Hour,
	})
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	fmt.Fprintf(writer, "admin issued token %s (scope=%s, expires=%s)\n",
		token.ID, token.Scope, token.ExpiresAt.Format(time.RFC3339))

	if _, err := tokens.Verify(ctx, token.ID, tokenDomain.FollowAuthorizationScope); err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}
	fmt.Fprintln(writer, "token verified for follow authorization")

	follow, err := relationships.CreateFollow(ctx, &relationshipDomain.CreateFollowInput{
		SourceID: alice.ID,
		TargetID: bob.ID,
		TokenID:  token.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}
	fmt.Fprintf(writer, "alice now follows bob (relationship %s)\n", follow.ID)

	following, err := relationships.ListFollowing(ctx, alice.ID)
	if err != nil {
		return fmt.Errorf("failed to list following: %w", err)
	}
	for _, identity := range following {
		fmt.Fprintf(writer, "alice follows: %s\n", identity.DisplayName)
	}

	followers, err := relationships.ListFollowers(ctx, bob.ID)
	if err != nil {
		return fmt.Errorf("failed to list followers: %w", err)
	}
	for _, identity := range followers {
		fmt.Fprintf(writer, "bob is followed by: %s\n", identity.DisplayName)
	}

	if err := tokens.Revoke(ctx, token.ID, admin.ID); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	fmt.Fprintln(writer, "admin revoked the token")

	// The revoked token must not authorize new follows
	if _, err := relationships.CreateFollow(ctx, &relationshipDomain.CreateFollowInput{
		SourceID: bob.ID,
		TargetID: alice.ID,
		TokenID:  token.ID,
	}); err != nil {
		fmt.Fprintf(writer, "follow with revoked token rejected: %v\n", err)
	} else {
		return fmt.Errorf("follow with revoked token unexpectedly succeeded")
	}

	report, err := reports.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}
	fmt.Fprintf(writer, "summary: identities=%d tokens=%d (active=%d revoked=%d) relationships=%d\n",
		report.Identities,
		report.Tokens.Total,
		report.Tokens.Active,
		report.Tokens.Revoked,
		report.TotalRelationships,
	)

	return nil
}
