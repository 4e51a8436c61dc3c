package api

import (
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/chama/internal/domain"
	"github.com/fsdevblog/chama/internal/service"
	"github.com/fsdevblog/chama/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	routerSuite
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	fullName := gofakeit.Name()
	password := gofakeit.Password(true, true, true, false, false, 10)

	s.mockUsers.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{
			Phone: "254712345678", FullName: fullName, Password: password, ReferralCode: "AB12CD34",
		}).
		Return(&domain.User{ID: 5, Phone: "254712345678", FullName: fullName, ReferralCode: "ZZ99YY88"}, "jwt-token", nil)
	s.mockUsers.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{Phone: "254700000001", FullName: fullName, Password: password}).
		Return(nil, "", domain.ErrDuplicateKey)
	s.mockUsers.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{Phone: "254700000002", FullName: fullName, Password: password}).
		Return(nil, "", domain.ErrInvalidReferral)

	cases := []struct {
		name       string
		body       map[string]any
		opts       []func(*testutils.RequestOptions)
		wantStatus int
		wantError  string
	}{
		{
			name: "ok",
			body: map[string]any{
				"phone": "254712345678", "fullName": fullName, "password": password, "referralCode": "AB12CD34",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid phone",
			body:       map[string]any{"phone": "0712345678", "fullName": fullName, "password": password},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "password over bytes",
			body: map[string]any{
				"phone": "254712345678", "fullName": fullName, "password": testutils.GenerateOverBytesUnderRunes(20),
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "phone taken",
			body:       map[string]any{"phone": "254700000001", "fullName": fullName, "password": password},
			wantStatus: http.StatusConflict,
			wantError:  "user with this phone already exists",
		},
		{
			name:       "unknown referral",
			body:       map[string]any{"phone": "254700000002", "fullName": fullName, "password": password},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  domain.ErrInvalidReferral.Error(),
		},
		{
			name:       "already authorized",
			body:       map[string]any{"phone": "254712345678", "fullName": fullName, "password": password},
			opts:       []func(*testutils.RequestOptions){testutils.WithBearer(s.currentUserJWT)},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			resp := s.do(http.MethodPost, RouteGroup+RegisterRoute, tc.body, tc.opts...)
			defer resp.Body.Close()
			s.Equal(tc.wantStatus, resp.StatusCode)

			switch {
			case tc.wantError != "":
				s.Equal(tc.wantError, s.errorMessage(resp))
			case tc.wantStatus == http.StatusCreated:
				s.Equal("Bearer jwt-token", resp.Header.Get("Authorization"))
				var body AuthResponse
				s.Require().NoError(testutils.DecodeBody(resp, &body))
				s.Equal(int64(5), body.User.ID)
				s.Equal("ZZ99YY88", body.User.ReferralCode)
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.mockUsers.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Phone: "254712345678", Password: "secret1"}).
		Return(&domain.User{ID: 5, Phone: "254712345678"}, "jwt-token", nil)
	s.mockUsers.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Phone: "254712345678", Password: "wrong-pass"}).
		Return(nil, "", domain.ErrPasswordMissMatch)
	s.mockUsers.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Phone: "254799999999", Password: "secret1"}).
		Return(nil, "", domain.ErrRecordNotFound)

	resp := s.do(http.MethodPost, RouteGroup+LoginRoute,
		map[string]string{"phone": "254712345678", "password": "secret1"})
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("Bearer jwt-token", resp.Header.Get("Authorization"))
	resp.Body.Close()

	for _, body := range []map[string]string{
		{"phone": "254712345678", "password": "wrong-pass"},
		{"phone": "254799999999", "password": "secret1"},
	} {
		resp = s.do(http.MethodPost, RouteGroup+LoginRoute, body)
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
		s.Equal("invalid credentials", s.errorMessage(resp))
	}

	resp = s.do(http.MethodPost, RouteGroup+LoginRoute, map[string]string{"phone": "254712345678"})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *AuthHandlerTestSuite) TestProfile() {
	s.mockUsers.EXPECT().Profile(gomock.Any(), s.currentUserID).
		Return(&domain.User{ID: s.currentUserID, FullName: "Jane Wanjiru"}, nil)
	s.mockUsers.EXPECT().UpdateProfile(gomock.Any(), s.currentUserID, "Jane W. Kamau").
		Return(&domain.User{ID: s.currentUserID, FullName: "Jane W. Kamau"}, nil)

	resp := s.do(http.MethodGet, RouteGroup+ProfileRoute, nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = s.authed(http.MethodGet, RouteGroup+ProfileRoute, nil)
	var user UserResponse
	s.Require().NoError(testutils.DecodeBody(resp, &user))
	s.Equal("Jane Wanjiru", user.FullName)

	resp = s.authed(http.MethodPatch, RouteGroup+ProfileRoute, map[string]string{"fullName": "Jane W. Kamau"})
	s.Require().NoError(testutils.DecodeBody(resp, &user))
	s.Equal("Jane W. Kamau", user.FullName)

	resp = s.authed(http.MethodPatch, RouteGroup+ProfileRoute, map[string]string{"fullName": ""})
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}
