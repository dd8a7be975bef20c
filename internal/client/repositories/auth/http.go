package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/dmitrijs2005/posclient/internal/client/client"
	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/client/repositories/session"
	"github.com/dmitrijs2005/posclient/internal/common"
	"github.com/dmitrijs2005/posclient/internal/logging"
)

const clientPath = "/v1/client"

// registerRequest is the sign-up body. The backend reads the email from
// the description field.
type registerRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Password    string `json:"password"`
	Address     string `json:"address"`
}

// HTTPRepository implements Repository over the REST API.
type HTTPRepository struct {
	client   client.Client
	sessions session.Store
	log      logging.Logger
}

func NewHTTPRepository(c client.Client, sessions session.Store, log logging.Logger) *HTTPRepository {
	return &HTTPRepository{client: c, sessions: sessions, log: log.With("repository", "auth")}
}

func (r *HTTPRepository) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.login(ctx, email, password)
	if err != nil {
		r.log.Error(ctx, "login failed", "email", email, "error", err)
		return nil, common.WithCause(ErrLoginFailed, err)
	}
	return user, nil
}

func (r *HTTPRepository) login(ctx context.Context, email, password string) (*models.User, error) {
	params := url.Values{}
	params.Set("email", email)
	params.Set("password", password)

	var resp models.APIResponse
	if err := r.client.Get(ctx, clientPath, params, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || isEmpty(resp.Data) {
		if resp.Error != "" {
			return nil, errors.New(resp.Error)
		}
		return nil, client.ErrUnexpectedResponse
	}

	var user models.User
	if err := json.Unmarshal(resp.Data, &user); err != nil {
		return nil, common.WithCause(client.ErrUnexpectedResponse, err)
	}

	if err := r.sessions.Save(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *HTTPRepository) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	body := registerRequest{
		Name:        reg.Name,
		Description: reg.Email,
		Password:    reg.Password,
		Address:     reg.Address,
	}

	if err := r.client.Post(ctx, clientPath, body, nil); err != nil {
		r.log.Error(ctx, "registration failed", "email", reg.Email, "error", err)
		return nil, common.WithCause(ErrRegisterFailed, err)
	}

	user, err := r.login(ctx, reg.Email, reg.Password)
	if err != nil {
		r.log.Error(ctx, "login after registration failed", "email", reg.Email, "error", err)
		return nil, common.WithCause(ErrRegisterFailed, err)
	}
	return user, nil
}

func (r *HTTPRepository) Logout(ctx context.Context) error {
	if err := r.sessions.Clear(ctx); err != nil {
		r.log.Error(ctx, "logout failed", "error", err)
		return common.WithCause(ErrLogoutFailed, err)
	}
	return nil
}

func (r *HTTPRepository) CurrentUser(ctx context.Context) *models.User {
	user, err := r.sessions.Load(ctx)
	switch {
	case err == nil:
		return user
	case errors.Is(err, session.ErrNoSession):
	default:
		r.log.Warn(ctx, "stored session unreadable", "error", err)
	}
	return nil
}

func (r *HTTPRepository) IsAuthenticated(ctx context.Context) bool {
	return r.CurrentUser(ctx) != nil
}

func isEmpty(raw json.RawMessage) bool {
	s := string(raw)
	return s == "" || s == "null"
}
