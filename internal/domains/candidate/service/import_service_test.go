package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/repository"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/location"
	locmodel "github.com/Melodious-nub/bnp-digital-backend/internal/domains/location/model"
)

// ---------------------------------------------------------------------
// In-memory store with transaction semantics: writes go to a staged copy
// that only replaces the committed state when the pass returns nil.
// ---------------------------------------------------------------------

type fakeUser struct {
	id           int64
	username     string
	passwordHash string
	role         string
}

type fakeCandidate struct {
	id int64
	model.Candidate
}

type fakeState struct {
	users      map[int64]*fakeUser
	candidates map[int64]*fakeCandidate
	nextUserID int64
	nextCandID int64
}

func (s *fakeState) clone() *fakeState {
	c := &fakeState{
		users:      make(map[int64]*fakeUser, len(s.users)),
		candidates: make(map[int64]*fakeCandidate, len(s.candidates)),
		nextUserID: s.nextUserID,
		nextCandID: s.nextCandID,
	}
	for id, u := range s.users {
		cp := *u
		c.users[id] = &cp
	}
	for id, cand := range s.candidates {
		cp := *cand
		c.candidates[id] = &cp
	}
	return c
}

type fakeStore struct {
	divisions []locmodel.Division
	districts []locmodel.District

	committed *fakeState

	// failAfterWrites > 0 makes the Nth write return a connection error
	failAfterWrites int
	writes          int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		divisions: []locmodel.Division{
			{ID: 1, Name: "Dhaka", BnName: "ঢাকা"},
			{ID: 2, Name: "Chattogram", BnName: "চট্টগ্রাম"},
		},
		districts: []locmodel.District{
			{ID: 1, DivisionID: 1, Name: "Dhaka", BnName: "ঢাকা"},
			{ID: 2, DivisionID: 1, Name: "Gazipur", BnName: "গাজীপুর"},
			{ID: 19, DivisionID: 2, Name: "Cox's Bazar", BnName: "কক্সবাজার"},
		},
		committed: &fakeState{
			users:      map[int64]*fakeUser{},
			candidates: map[int64]*fakeCandidate{},
			nextUserID: 1,
			nextCandID: 1,
		},
	}
}

func (s *fakeStore) WithinImport(ctx context.Context, fn func(tx repository.ImportTx) error) error {
	staged := s.committed.clone()
	if err := fn(&fakeTx{store: s, state: staged}); err != nil {
		return err
	}
	s.committed = staged
	return nil
}

func (s *fakeStore) userByUsername(state *fakeState, username string) *fakeUser {
	for _, u := range state.users {
		if u.username == username {
			return u
		}
	}
	return nil
}

func (s *fakeStore) candidateBySeat(state *fakeState, districtID int64, constituencyNo int) *fakeCandidate {
	for _, c := range state.candidates {
		if c.DistrictID == districtID && c.ConstituencyNo == constituencyNo {
			return c
		}
	}
	return nil
}

type fakeTx struct {
	store *fakeStore
	state *fakeState
}

func (t *fakeTx) countWrite() error {
	t.store.writes++
	if t.store.failAfterWrites > 0 && t.store.writes > t.store.failAfterWrites {
		return errors.New("connection reset by peer")
	}
	return nil
}

func (t *fakeTx) FindDivision(ctx context.Context, name string) (*locmodel.Division, error) {
	for i := range t.store.divisions {
		if t.store.divisions[i].Name == name {
			return &t.store.divisions[i], nil
		}
	}
	return nil, location.ErrDivisionNotFound
}

func (t *fakeTx) FindDistrict(ctx context.Context, divisionID int64, name string) (*locmodel.District, error) {
	for i := range t.store.districts {
		d := &t.store.districts[i]
		if d.DivisionID == divisionID && d.Name == name {
			return d, nil
		}
	}
	return nil, location.ErrDistrictNotFound
}

func (t *fakeTx) FindSeat(ctx context.Context, districtID int64, constituencyNo int) (*repository.Seat, error) {
	c := t.store.candidateBySeat(t.state, districtID, constituencyNo)
	if c == nil {
		return nil, nil
	}
	return &repository.Seat{CandidateID: c.id, UserID: c.UserID}, nil
}

func (t *fakeTx) FindUserIDByUsername(ctx context.Context, username string) (int64, bool, error) {
	if u := t.store.userByUsername(t.state, username); u != nil {
		return u.id, true, nil
	}
	return 0, false, nil
}

func (t *fakeTx) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	if err := t.countWrite(); err != nil {
		return 0, err
	}
	id := t.state.nextUserID
	t.state.nextUserID++
	t.state.users[id] = &fakeUser{id: id, username: username, passwordHash: passwordHash, role: "candidate"}
	return id, nil
}

func (t *fakeTx) UpdateUsername(ctx context.Context, userID int64, username string) error {
	if err := t.countWrite(); err != nil {
		return err
	}
	if u, ok := t.state.users[userID]; ok {
		u.username = username
	}
	return nil
}

func (t *fakeTx) InsertCandidate(ctx context.Context, c *model.Candidate) error {
	if err := t.countWrite(); err != nil {
		return err
	}
	id := t.state.nextCandID
	t.state.nextCandID++
	t.state.candidates[id] = &fakeCandidate{id: id, Candidate: *c}
	return nil
}

func (t *fakeTx) UpdateCandidate(ctx context.Context, candidateID int64, c *model.Candidate) error {
	if err := t.countWrite(); err != nil {
		return err
	}
	existing, ok := t.state.candidates[candidateID]
	if !ok {
		return errors.New("candidate does not exist")
	}
	updated := *c
	updated.UserID = existing.UserID
	t.state.candidates[candidateID] = &fakeCandidate{id: candidateID, Candidate: updated}
	return nil
}

// ---------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------

const testDefaultPassword = "Import-test-1"

func newTestService(store repository.ImportStore) ImportServiceInterface {
	return NewImportService(store, testDefaultPassword, 1000)
}

func validRow(division, district, constituencyNo string) model.ImportRow {
	return model.ImportRow{
		"Division":          division,
		"District":          district,
		"Constituency_No":   constituencyNo,
		"Candidate_Name_En": "Test Candidate",
		"প্রার্থির_নাম":     "টেস্ট প্রার্থী",
		"Vision":            "Better roads",
	}
}

func TestImportRows_MissingMandatoryFields(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	rows := []model.ImportRow{
		{"District": "Dhaka", "Constituency_No": "5"},            // no Division
		{"Division": "Dhaka", "Constituency_No": "5"},            // no District
		{"Division": "Dhaka", "District": "Dhaka"},               // no Constituency_No
		{"Division": "  ", "District": "Dhaka", "Constituency_No": "5"}, // blank after trim
	}

	summary, err := svc.ImportRows(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalRows)
	assert.Equal(t, 0, summary.Success)
	assert.Equal(t, 4, summary.Skipped)
	require.Len(t, summary.SkippedDetails, 4)
	for i, detail := range summary.SkippedDetails {
		assert.Equal(t, i+2, detail.Row)
		assert.Contains(t, detail.Error, "missing mandatory fields")
	}

	assert.Empty(t, store.committed.users)
	assert.Empty(t, store.committed.candidates)
}

func TestImportRows_NonNumericConstituency(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	summary, err := svc.ImportRows(context.Background(), []model.ImportRow{
		validRow("Dhaka", "Dhaka", "abc"),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Success)
	require.Len(t, summary.SkippedDetails, 1)
	assert.Contains(t, summary.SkippedDetails[0].Error, "number")
	assert.Empty(t, store.committed.candidates)
}

func TestImportRows_UnknownDivision(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	summary, err := svc.ImportRows(context.Background(), []model.ImportRow{
		validRow("Atlantis", "Dhaka", "1"),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Success)
	require.Len(t, summary.SkippedDetails, 1)
	assert.Contains(t, summary.SkippedDetails[0].Error, `division "Atlantis" not found`)
}

func TestImportRows_UnknownDistrict(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	summary, err := svc.ImportRows(context.Background(), []model.ImportRow{
		validRow("Dhaka", "Narnia", "1"),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Success)
	require.Len(t, summary.SkippedDetails, 1)
	assert.Contains(t, summary.SkippedDetails[0].Error, `district "Narnia" not found`)
	assert.Empty(t, store.committed.candidates)
}

func TestImportRows_DistrictLookupScopedByDivision(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	// Cox's Bazar is in Chattogram, not Dhaka
	summary, err := svc.ImportRows(context.Background(), []model.ImportRow{
		validRow("Dhaka", "Cox's Bazar", "1"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Skipped)
	assert.Contains(t, summary.SkippedDetails[0].Error, `not found in division "Dhaka"`)
}

func TestImportRows_DerivesUsernameAndSlug(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	summary, err := svc.ImportRows(context.Background(), []model.ImportRow{
		validRow("Dhaka", "Dhaka", "5"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Success)

	require.Len(t, store.committed.users, 1)
	var user *fakeUser
	for _, u := range store.committed.users {
		user = u
	}
	assert.Equal(t, "Dhaka5", user.username)
	assert.Equal(t, "candidate", user.role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.passwordHash), []byte(testDefaultPassword)))

	require.Len(t, store.committed.candidates, 1)
	for _, c := range store.committed.candidates {
		assert.Equal(t, "dhaka5", c.Slug)
		assert.Equal(t, user.id, c.UserID)
		assert.Equal(t, int64(1), c.DistrictID)
		assert.Equal(t, 5, c.ConstituencyNo)
	}
}

func TestImportRows_WhitespaceDistrictDerivation(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	summary, err := svc.ImportRows(context.Background(), []model.ImportRow{
		validRow("Chattogram", "Cox's Bazar", "3"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Success)

	for _, u := range store.committed.users {
		assert.Equal(t, "Cox'sBazar3", u.username)
	}
	for _, c := range store.committed.candidates {
		assert.Equal(t, "cox'sbazar3", c.Slug)
	}
}

func TestImportRows_EndToEndSummary(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	updated := validRow("Dhaka", "Dhaka", "5")
	updated["Vision"] = "Clean water for every ward"

	rows := []model.ImportRow{
		validRow("Dhaka", "Dhaka", "5"),             // new seat
		{"District": "Dhaka", "Constituency_No": "5"}, // empty Division
		updated, // same seat again, updated vision
	}

	summary, err := svc.ImportRows(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, 2, summary.Success)
	assert.Equal(t, 1, summary.Skipped)

	// One account, one profile, vision updated in place
	assert.Len(t, store.committed.users, 1)
	require.Len(t, store.committed.candidates, 1)
	for _, c := range store.committed.candidates {
		assert.Equal(t, "Clean water for every ward", c.Vision)
	}
}

func TestImportRows_Idempotence(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	rows := []model.ImportRow{
		validRow("Dhaka", "Dhaka", "5"),
		validRow("Dhaka", "Gazipur", "2"),
	}

	first, err := svc.ImportRows(context.Background(), rows)
	require.NoError(t, err)
	second, err := svc.ImportRows(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, first.Success, second.Success)
	assert.Len(t, store.committed.users, 2)
	assert.Len(t, store.committed.candidates, 2)
}

func TestImportRows_UsernameCollisionReusesAccount(t *testing.T) {
	store := newFakeStore()
	// Pre-existing account with the derived username but no profile
	store.committed.users[1] = &fakeUser{id: 1, username: "Dhaka5", passwordHash: "x", role: "candidate"}
	store.committed.nextUserID = 2

	svc := newTestService(store)
	summary, err := svc.ImportRows(context.Background(), []model.ImportRow{
		validRow("Dhaka", "Dhaka", "5"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Success)
	assert.Len(t, store.committed.users, 1)
	for _, c := range store.committed.candidates {
		assert.Equal(t, int64(1), c.UserID)
	}
}

func TestImportRows_FatalErrorRollsBackEverything(t *testing.T) {
	store := newFakeStore()
	// First two rows need two writes each (user + profile); fail on the fifth
	store.failAfterWrites = 4

	svc := newTestService(store)
	rows := []model.ImportRow{
		validRow("Dhaka", "Dhaka", "1"),
		validRow("Dhaka", "Dhaka", "2"),
		validRow("Dhaka", "Dhaka", "3"),
	}

	summary, err := svc.ImportRows(context.Background(), rows)
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "connection reset")

	// No partial commit
	assert.Empty(t, store.committed.users)
	assert.Empty(t, store.committed.candidates)
}

func TestImportRows_EmptyAndOversized(t *testing.T) {
	store := newFakeStore()

	_, err := newTestService(store).ImportRows(context.Background(), nil)
	assert.ErrorIs(t, err, candidate.ErrEmptyWorkbook)

	small := NewImportService(store, testDefaultPassword, 1)
	_, err = small.ImportRows(context.Background(), []model.ImportRow{
		validRow("Dhaka", "Dhaka", "1"),
		validRow("Dhaka", "Dhaka", "2"),
	})
	assert.ErrorIs(t, err, candidate.ErrTooManyRows)
}
