package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tapnote/tapnote/internal/adapter/directory"
	domainErrors "github.com/tapnote/tapnote/internal/domain/errors"
	"github.com/tapnote/tapnote/internal/domain/model"
	"github.com/tapnote/tapnote/internal/server/http/middleware"
	"github.com/tapnote/tapnote/internal/server/http/templates"
	testhelpers "github.com/tapnote/tapnote/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performForm(t *testing.T, method, target string, handler gin.HandlerFunc, setup func(*gin.Context), form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	route, _, _ := strings.Cut(target, "?")
	return performFormAt(t, method, route, target, handler, setup, form)
}

func performFormAt(t *testing.T, method, route, target string, handler gin.HandlerFunc, setup func(*gin.Context), form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.SetHTMLTemplate(templates.MustLoad())
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader *strings.Reader
	if method == http.MethodGet && form != nil {
		target = target + "?" + form.Encode()
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, reader)
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func withUser(user *model.User) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserContextKey, user)
	}
}

func sessionCookie(t *testing.T, resp *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	for _, cookie := range result.Cookies() {
		if cookie.Name == "tapnote_session" {
			return cookie
		}
	}
	return nil
}

func TestCurrentUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUser(c); got != nil {
		t.Fatalf("expected nil when not set, got %+v", got)
	}

	user := &model.User{ID: 42, Username: "alice"}
	c.Set(middleware.UserContextKey, user)
	if got := CurrentUser(c); got != user {
		t.Fatalf("expected stored user, got %+v", got)
	}
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{next: "/brewery/abc123", want: "/brewery/abc123"},
		{next: "/home", want: "/home"},
		{next: "", want: "/home"},
		{next: "https://evil.example", want: "/home"},
		{next: "//evil.example", want: "/home"},
	}
	for _, tt := range tests {
		if got := safeNext(tt.next); got != tt.want {
			t.Fatalf("safeNext(%q) = %q, want %q", tt.next, got, tt.want)
		}
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	username := testhelpers.RandomASCIIString(5, 15)
	email := testhelpers.RandomEmail()
	password := testhelpers.RandomASCIIString(16, 32)

	handler := NewAuthHandler(testhelpers.AuthFacadeStub{
		RegisterFn: func(ctx context.Context, gotUsername, gotEmail, gotPassword string) (*model.User, error) {
			if gotUsername != username || gotEmail != email || gotPassword != password {
				t.Fatalf("unexpected credentials passed to facade: %q %q", gotUsername, gotEmail)
			}
			return &model.User{ID: 1, Username: gotUsername, Email: gotEmail}, nil
		},
		CurrentUserFn: func(ctx context.Context, token string) (*model.User, error) {
			return nil, domainErrors.ErrNoSession
		},
	})

	form := url.Values{
		"username":         {username},
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
	}
	resp := performForm(t, http.MethodPost, "/register", handler.Register, nil, form)
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/login?registered=1" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestAuthHandlerRegisterValidation(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{
		RegisterFn: func(ctx context.Context, _, _, _ string) (*model.User, error) {
			t.Fatal("facade must not be called for an invalid form")
			return nil, nil
		},
		CurrentUserFn: func(ctx context.Context, token string) (*model.User, error) {
			return nil, domainErrors.ErrNoSession
		},
	})

	tests := []struct {
		name    string
		form    url.Values
		message string
	}{
		{
			name: "username too short",
			form: url.Values{
				"username":         {"a"},
				"email":            {"alice@example.com"},
				"password":         {"secret"},
				"confirm_password": {"secret"},
			},
			message: "Must be at least 2 characters.",
		},
		{
			name: "bad email",
			form: url.Values{
				"username":         {"alice"},
				"email":            {"not-an-email"},
				"password":         {"secret"},
				"confirm_password": {"secret"},
			},
			message: "Enter a valid email address.",
		},
		{
			name: "password mismatch",
			form: url.Values{
				"username":         {"alice"},
				"email":            {"alice@example.com"},
				"password":         {"secret"},
				"confirm_password": {"other"},
			},
			message: "Passwords must match.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performForm(t, http.MethodPost, "/register", handler.Register, nil, tt.form)
			if resp.Code != http.StatusOK {
				t.Fatalf("expected re-rendered form with status 200, got %d", resp.Code)
			}
			if !strings.Contains(resp.Body.String(), tt.message) {
				t.Fatalf("expected body to contain %q", tt.message)
			}
		})
	}
}

func TestAuthHandlerRegisterConflict(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{
		RegisterFn: func(ctx context.Context, _, _, _ string) (*model.User, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
		CurrentUserFn: func(ctx context.Context, token string) (*model.User, error) {
			return nil, domainErrors.ErrNoSession
		},
	})

	form := url.Values{
		"username":         {"alice"},
		"email":            {"alice@example.com"},
		"password":         {"secret"},
		"confirm_password": {"secret"},
	}
	resp := performForm(t, http.MethodPost, "/register", handler.Register, nil, form)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "already registered") {
		t.Fatalf("expected conflict notice, got body %q", resp.Body.String())
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{
		LoginFn: func(ctx context.Context, email, password string) (string, error) {
			return "session-token", nil
		},
	})

	form := url.Values{
		"email":    {"alice@example.com"},
		"password": {"secret"},
	}
	resp := performForm(t, http.MethodPost, "/login", handler.Login, nil, form)
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/home" {
		t.Fatalf("unexpected redirect target %q", loc)
	}

	cookie := sessionCookie(t, resp)
	if cookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if cookie.Value != "session-token" {
		t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatal("expected session cookie to be http-only")
	}
}

func TestAuthHandlerLoginHonorsNext(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{})

	form := url.Values{
		"email":    {"alice@example.com"},
		"password": {"secret"},
	}
	resp := performForm(t, http.MethodPost, "/login?next="+url.QueryEscape("/brewery/abc123"), handler.Login, nil, form)
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/brewery/abc123" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestAuthHandlerLoginRejectsOffsiteNext(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{})

	form := url.Values{
		"email":    {"alice@example.com"},
		"password": {"secret"},
	}
	resp := performForm(t, http.MethodPost, "/login?next="+url.QueryEscape("//evil.example/phish"), handler.Login, nil, form)
	if loc := resp.Header().Get("Location"); loc != "/home" {
		t.Fatalf("expected offsite next to fall back to /home, got %q", loc)
	}
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{
		LoginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		},
	})

	form := url.Values{
		"email":    {"alice@example.com"},
		"password": {"wrong"},
	}
	resp := performForm(t, http.MethodPost, "/login", handler.Login, nil, form)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Login unsuccessful") {
		t.Fatalf("expected generic failure notice, got body %q", resp.Body.String())
	}
	if cookie := sessionCookie(t, resp); cookie != nil {
		t.Fatal("expected no session cookie on failed login")
	}
}

func TestAuthHandlerLoginPageShowsRegisteredNotice(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{
		CurrentUserFn: func(ctx context.Context, token string) (*model.User, error) {
			return nil, domainErrors.ErrNoSession
		},
	})

	resp := performForm(t, http.MethodGet, "/login", handler.LoginPage, nil, url.Values{"registered": {"1"}})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "You are now able to log in") {
		t.Fatalf("expected registration notice, got body %q", resp.Body.String())
	}
}

func TestAuthHandlerRegisterPageRedirectsAuthenticated(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{})

	setup := func(c *gin.Context) {
		c.Request.AddCookie(&http.Cookie{Name: "tapnote_session", Value: "live-token"})
	}
	resp := performForm(t, http.MethodGet, "/register", handler.RegisterPage, setup, nil)
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/home" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestAuthHandlerLogout(t *testing.T) {
	loggedOut := ""
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{
		LogoutFn: func(ctx context.Context, token string) error {
			loggedOut = token
			return nil
		},
	})

	setup := func(c *gin.Context) {
		c.Request.AddCookie(&http.Cookie{Name: "tapnote_session", Value: "session-token"})
	}
	resp := performForm(t, http.MethodGet, "/logout", handler.Logout, setup, nil)
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
	if loggedOut != "session-token" {
		t.Fatalf("expected session to be deleted, got %q", loggedOut)
	}

	cookie := sessionCookie(t, resp)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Fatal("expected session cookie to be cleared")
	}
}

func TestSearchHandlerHome(t *testing.T) {
	user := &model.User{ID: 7, Username: "alice"}
	handler := NewSearchHandler(testhelpers.DirectoryFacadeStub{}, testhelpers.ReviewFacadeStub{
		UserReviewsFn: func(ctx context.Context, userID int64) ([]model.Review, error) {
			if userID != user.ID {
				t.Fatalf("unexpected user id %d", userID)
			}
			return []model.Review{{ID: 1, BreweryID: "abc123", Rating: 4, Description: "Solid porter."}}, nil
		},
	})

	resp := performForm(t, http.MethodGet, "/home", handler.Home, withUser(user), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "alice") {
		t.Fatalf("expected username in body, got %q", body)
	}
	if !strings.Contains(body, "Solid porter.") {
		t.Fatalf("expected the user's review in body, got %q", body)
	}
}

func TestSearchHandlerSearch(t *testing.T) {
	handler := NewSearchHandler(testhelpers.DirectoryFacadeStub{
		SearchFn: func(ctx context.Context, searchType, query string) ([]model.Brewery, error) {
			if searchType != "by_city" || query != "Austin" {
				t.Fatalf("unexpected search %q %q", searchType, query)
			}
			return []model.Brewery{
				{"id": "abc123", "name": "Hop House", "city": "Austin"},
				{"id": "def456", "name": "Barrel Works", "city": "Austin"},
			}, nil
		},
	}, testhelpers.ReviewFacadeStub{})

	form := url.Values{
		"search_type": {"by_city"},
		"query":       {"Austin"},
	}
	resp := performForm(t, http.MethodPost, "/search", handler.Search, withUser(&model.User{ID: 1}), form)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "Hop House") || !strings.Contains(body, "Barrel Works") {
		t.Fatalf("expected both breweries in body, got %q", body)
	}
	if !strings.Contains(body, `/brewery/abc123`) {
		t.Fatalf("expected detail link in body, got %q", body)
	}
}

func TestSearchHandlerSearchNoResults(t *testing.T) {
	handler := NewSearchHandler(testhelpers.DirectoryFacadeStub{
		SearchFn: func(ctx context.Context, searchType, query string) ([]model.Brewery, error) {
			return nil, nil
		},
	}, testhelpers.ReviewFacadeStub{})

	form := url.Values{
		"search_type": {"by_name"},
		"query":       {"nowhere"},
	}
	resp := performForm(t, http.MethodPost, "/search", handler.Search, withUser(&model.User{ID: 1}), form)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "No results.") {
		t.Fatalf("expected empty result message, got %q", resp.Body.String())
	}
}

func TestSearchHandlerSearchDirectoryDown(t *testing.T) {
	handler := NewSearchHandler(testhelpers.DirectoryFacadeStub{
		SearchFn: func(ctx context.Context, searchType, query string) ([]model.Brewery, error) {
			return nil, &directory.UpstreamError{Status: http.StatusBadGateway, Err: errors.New("bad gateway")}
		},
	}, testhelpers.ReviewFacadeStub{})

	form := url.Values{
		"search_type": {"by_type"},
		"query":       {"micro"},
	}
	resp := performForm(t, http.MethodPost, "/search", handler.Search, withUser(&model.User{ID: 1}), form)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "currently unavailable") {
		t.Fatalf("expected unavailable message, got %q", resp.Body.String())
	}
}

func TestSearchHandlerSearchValidation(t *testing.T) {
	handler := NewSearchHandler(testhelpers.DirectoryFacadeStub{
		SearchFn: func(ctx context.Context, searchType, query string) ([]model.Brewery, error) {
			t.Fatal("directory must not be queried for an invalid form")
			return nil, nil
		},
	}, testhelpers.ReviewFacadeStub{})

	form := url.Values{
		"search_type": {"by_zipcode"},
		"query":       {"78701"},
	}
	resp := performForm(t, http.MethodPost, "/search", handler.Search, withUser(&model.User{ID: 1}), form)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected re-rendered form with status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Select a valid search type.") {
		t.Fatalf("expected search type error, got %q", resp.Body.String())
	}
}

func TestBreweryHandlerShow(t *testing.T) {
	handler := NewBreweryHandler(testhelpers.BreweryFacadeStub{
		DirectoryFacadeStub: testhelpers.DirectoryFacadeStub{
			GetByIDFn: func(ctx context.Context, id string) (model.Brewery, error) {
				if id != "abc123" {
					t.Fatalf("unexpected brewery id %q", id)
				}
				return model.Brewery{"id": id, "name": "Hop House", "city": "Austin"}, nil
			},
		},
		ReviewFacadeStub: testhelpers.ReviewFacadeStub{
			BreweryReviewsFn: func(ctx context.Context, breweryID string) ([]model.Review, error) {
				return []model.Review{
					{ID: 1, Username: "alice", Rating: 5, Description: "Best IPA in town."},
					{ID: 2, Username: "bob", Rating: 3, Description: "Decent."},
				}, nil
			},
		},
	})

	resp := performFormAt(t, http.MethodGet, "/brewery/:id", "/brewery/abc123", handler.Show, withUser(&model.User{ID: 1}), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "Hop House") {
		t.Fatalf("expected brewery name in body, got %q", body)
	}
	if !strings.Contains(body, "Best IPA in town.") || !strings.Contains(body, "bob") {
		t.Fatalf("expected reviews in body, got %q", body)
	}
}

func TestBreweryHandlerShowDirectoryDown(t *testing.T) {
	handler := NewBreweryHandler(testhelpers.BreweryFacadeStub{
		DirectoryFacadeStub: testhelpers.DirectoryFacadeStub{
			GetByIDFn: func(ctx context.Context, id string) (model.Brewery, error) {
				return nil, &directory.UpstreamError{Status: http.StatusInternalServerError, Err: errors.New("boom")}
			},
		},
		ReviewFacadeStub: testhelpers.ReviewFacadeStub{
			BreweryReviewsFn: func(ctx context.Context, breweryID string) ([]model.Review, error) {
				return []model.Review{{ID: 1, Username: "alice", Rating: 4, Description: "Still good."}}, nil
			},
		},
	})

	resp := performFormAt(t, http.MethodGet, "/brewery/:id", "/brewery/abc123", handler.Show, withUser(&model.User{ID: 1}), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "currently unavailable") {
		t.Fatalf("expected unavailable message, got %q", body)
	}
	// Stored reviews render even when the directory is down.
	if !strings.Contains(body, "Still good.") {
		t.Fatalf("expected reviews in body, got %q", body)
	}
}

func TestBreweryHandlerSubmit(t *testing.T) {
	added := false
	handler := NewBreweryHandler(testhelpers.BreweryFacadeStub{
		ReviewFacadeStub: testhelpers.ReviewFacadeStub{
			AddFn: func(ctx context.Context, userID int64, breweryID string, rating int, description string) (*model.Review, error) {
				if userID != 7 || breweryID != "abc123" || rating != 4 || description != "Great stout." {
					t.Fatalf("unexpected review %d %q %d %q", userID, breweryID, rating, description)
				}
				added = true
				return &model.Review{ID: 1, UserID: userID, BreweryID: breweryID, Rating: rating, Description: description}, nil
			},
		},
	})

	form := url.Values{
		"rating":      {"4"},
		"description": {"Great stout."},
	}
	resp := performFormAt(t, http.MethodPost, "/brewery/:id", "/brewery/abc123", handler.Submit, withUser(&model.User{ID: 7}), form)
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/brewery/abc123" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
	if !added {
		t.Fatal("expected review to be stored")
	}
}

func TestBreweryHandlerSubmitRatingBounds(t *testing.T) {
	handler := NewBreweryHandler(testhelpers.BreweryFacadeStub{
		ReviewFacadeStub: testhelpers.ReviewFacadeStub{
			AddFn: func(ctx context.Context, _ int64, _ string, _ int, _ string) (*model.Review, error) {
				t.Fatal("review must not be stored for an invalid form")
				return nil, nil
			},
		},
	})

	for _, rating := range []string{"0", "6", "-1", "abc"} {
		form := url.Values{
			"rating":      {rating},
			"description": {"Out of range."},
		}
		resp := performFormAt(t, http.MethodPost, "/brewery/:id", "/brewery/abc123", handler.Submit, withUser(&model.User{ID: 7}), form)
		if resp.Code != http.StatusOK {
			t.Fatalf("rating %q: expected re-rendered form with status 200, got %d", rating, resp.Code)
		}
		if !strings.Contains(resp.Body.String(), "Rating must be between 1 and 5.") {
			t.Fatalf("rating %q: expected rating error in body", rating)
		}
	}
}

func TestBreweryHandlerSubmitRejectedByUseCase(t *testing.T) {
	handler := NewBreweryHandler(testhelpers.BreweryFacadeStub{
		ReviewFacadeStub: testhelpers.ReviewFacadeStub{
			AddFn: func(ctx context.Context, _ int64, _ string, _ int, _ string) (*model.Review, error) {
				return nil, domainErrors.ErrInvalidReview
			},
		},
	})

	form := url.Values{
		"rating":      {"3"},
		"description": {"Fine."},
	}
	resp := performFormAt(t, http.MethodPost, "/brewery/:id", "/brewery/abc123", handler.Submit, withUser(&model.User{ID: 7}), form)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Rating must be between 1 and 5.") {
		t.Fatalf("expected rating error in body, got %q", resp.Body.String())
	}
}
