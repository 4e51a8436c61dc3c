package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TokensTestSuite struct {
	suite.Suite
	key []byte
}

func TestTokensSuite(t *testing.T) {
	suite.Run(t, new(TokensTestSuite))
}

func (s *TokensTestSuite) SetupTest() {
	s.key = []byte("secret")
}

func (s *TokensTestSuite) TestParseUserID() {
	valid, err := GenerateUserJWT(42, time.Hour, s.key)
	s.Require().NoError(err)
	expired, err := GenerateUserJWT(42, -time.Minute, s.key)
	s.Require().NoError(err)
	foreign, err := GenerateUserJWT(42, time.Hour, []byte("other"))
	s.Require().NoError(err)

	cases := []struct {
		name    string
		token   string
		wantID  int64
		wantErr error
	}{
		{name: "valid", token: valid, wantID: 42},
		{name: "expired", token: expired, wantErr: ErrTokenExpired},
		{name: "wrong key", token: foreign, wantErr: ErrInvalidToken},
		{name: "garbage", token: "not.a.token", wantErr: ErrInvalidToken},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			id, parseErr := ParseUserID(tc.token, s.key)
			if tc.wantErr != nil {
				s.Require().ErrorIs(parseErr, tc.wantErr)
				return
			}
			s.Require().NoError(parseErr)
			s.Equal(tc.wantID, id)
		})
	}
}
