package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate"
	candidatemodel "github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/model"
	candidateRepo "github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/repository"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/location"
	locmodel "github.com/Melodious-nub/bnp-digital-backend/internal/domains/location/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared"
	"github.com/Melodious-nub/bnp-digital-backend/pkg/jwt"
)

type seatKey struct {
	districtID     int64
	constituencyNo int
}

type fakeSeatStore struct {
	divisions  []locmodel.Division
	districts  []locmodel.District
	seats      map[seatKey]candidateRepo.Seat
	users      map[string]int64
	nextUserID int64
	candidates []candidatemodel.Candidate

	lastPasswordHash string
}

func newFakeSeatStore() *fakeSeatStore {
	return &fakeSeatStore{
		divisions: []locmodel.Division{{ID: 1, Name: "Dhaka"}},
		districts: []locmodel.District{
			{ID: 1, DivisionID: 1, Name: "Dhaka"},
			{ID: 2, DivisionID: 1, Name: "Gazipur"},
		},
		seats: map[seatKey]candidateRepo.Seat{},
		users: map[string]int64{},
	}
}

func (s *fakeSeatStore) WithinImport(ctx context.Context, fn func(tx candidateRepo.ImportTx) error) error {
	return fn(s)
}

func (s *fakeSeatStore) FindDivision(ctx context.Context, name string) (*locmodel.Division, error) {
	for i := range s.divisions {
		if strings.EqualFold(s.divisions[i].Name, name) {
			return &s.divisions[i], nil
		}
	}
	return nil, location.ErrDivisionNotFound
}

func (s *fakeSeatStore) FindDistrict(ctx context.Context, divisionID int64, name string) (*locmodel.District, error) {
	for i := range s.districts {
		if s.districts[i].DivisionID == divisionID && strings.EqualFold(s.districts[i].Name, name) {
			return &s.districts[i], nil
		}
	}
	return nil, location.ErrDistrictNotFound
}

func (s *fakeSeatStore) FindSeat(ctx context.Context, districtID int64, constituencyNo int) (*candidateRepo.Seat, error) {
	if seat, ok := s.seats[seatKey{districtID, constituencyNo}]; ok {
		return &seat, nil
	}
	return nil, nil
}

func (s *fakeSeatStore) FindUserIDByUsername(ctx context.Context, username string) (int64, bool, error) {
	id, ok := s.users[username]
	return id, ok, nil
}

func (s *fakeSeatStore) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	s.nextUserID++
	s.users[username] = s.nextUserID
	s.lastPasswordHash = passwordHash
	return s.nextUserID, nil
}

func (s *fakeSeatStore) UpdateUsername(ctx context.Context, userID int64, username string) error {
	return nil
}

func (s *fakeSeatStore) InsertCandidate(ctx context.Context, c *candidatemodel.Candidate) error {
	s.candidates = append(s.candidates, *c)
	s.seats[seatKey{c.DistrictID, c.ConstituencyNo}] = candidateRepo.Seat{
		CandidateID: int64(len(s.candidates)),
		UserID:      c.UserID,
	}
	return nil
}

func (s *fakeSeatStore) UpdateCandidate(ctx context.Context, candidateID int64, c *candidatemodel.Candidate) error {
	return nil
}

func registerReq() *model.RegisterRequest {
	return &model.RegisterRequest{
		FullNameEn:     "Test Candidate",
		Division:       "Dhaka",
		District:       "Gazipur",
		ConstituencyNo: 2,
		Email:          "candidate@example.com",
		Password:       "Register-test-1",
	}
}

func TestRegister_CreatesAccountAndProfile(t *testing.T) {
	store := newFakeSeatStore()
	svc := NewRegistrationService(store, jwt.NewManager("test-secret", 1))

	resp, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.Equal(t, "Gazipur2", resp.User.Username)
	assert.Equal(t, shared.RoleCandidate, resp.User.Role)
	assert.NotEmpty(t, resp.Token)

	require.Len(t, store.candidates, 1)
	assert.Equal(t, "gazipur2", store.candidates[0].Slug)
	assert.Equal(t, resp.User.ID, store.candidates[0].UserID)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(store.lastPasswordHash), []byte("Register-test-1")))
}

func TestRegister_SeatAlreadyTaken(t *testing.T) {
	store := newFakeSeatStore()
	svc := NewRegistrationService(store, jwt.NewManager("test-secret", 1))

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, candidate.ErrDuplicateSeat)
}

func TestRegister_UnknownDivision(t *testing.T) {
	store := newFakeSeatStore()
	svc := NewRegistrationService(store, jwt.NewManager("test-secret", 1))

	req := registerReq()
	req.Division = "Narnia"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, location.ErrDivisionNotFound)
}

func TestRegister_DistrictScopedByDivision(t *testing.T) {
	store := newFakeSeatStore()
	store.divisions = append(store.divisions, locmodel.Division{ID: 2, Name: "Chattogram"})
	svc := NewRegistrationService(store, jwt.NewManager("test-secret", 1))

	req := registerReq()
	req.Division = "Chattogram" // Gazipur belongs to Dhaka
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, location.ErrDistrictNotFound)
}

func TestRegister_UsernameCollision(t *testing.T) {
	store := newFakeSeatStore()
	store.users["Gazipur2"] = 99
	svc := NewRegistrationService(store, jwt.NewManager("test-secret", 1))

	_, err := svc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, account.ErrDuplicateUsername)
}
