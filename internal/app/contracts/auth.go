package contracts

import "context"

type AuthUsecase interface {
	IssueToken(ctx context.Context, email string) (string, error)
}
