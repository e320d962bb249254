package records

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/salescampus/salescampus-backend/pkg/enums"
	pkgerrors "github.com/salescampus/salescampus-backend/pkg/errors"
	"github.com/salescampus/salescampus-backend/pkg/logger"
	"github.com/salescampus/salescampus-backend/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	device := storage.NewMemory()
	store, err := NewStore(StoreParams{
		Device: device,
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	require.NoError(t, err)
	return store, device
}

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	store, _ := newTestStore(t)
	store.Initialize(context.Background())
	return store
}

func TestNewStoreRequiresDependencies(t *testing.T) {
	_, err := NewStore(StoreParams{})
	assert.Error(t, err)

	_, err = NewStore(StoreParams{Device: storage.NewMemory()})
	assert.Error(t, err)
}

func TestInitializeSeedsOnce(t *testing.T) {
	ctx := context.Background()
	store, device := newTestStore(t)

	store.Initialize(ctx)
	users := store.Users(ctx)
	require.NotEmpty(t, users)
	require.NotEmpty(t, store.Groups(ctx))
	require.NotEmpty(t, store.Posts(ctx))

	for _, key := range []string{KeyConversations, KeyMessages, KeyQuizzes, KeyEvents, KeyChallenges, KeyForumPosts, KeyTermsVersions} {
		raw, found, err := device.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, found, "expected %s seeded", key)
		assert.Equal(t, "[]", raw, "expected %s seeded empty", key)
	}

	usersRaw, _, err := device.Get(ctx, KeyUsers)
	require.NoError(t, err)
	groupsRaw, _, err := device.Get(ctx, KeyGroups)
	require.NoError(t, err)
	postsRaw, _, err := device.Get(ctx, KeyPosts)
	require.NoError(t, err)

	store.Initialize(ctx)

	usersAgain, _, err := device.Get(ctx, KeyUsers)
	require.NoError(t, err)
	groupsAgain, _, err := device.Get(ctx, KeyGroups)
	require.NoError(t, err)
	postsAgain, _, err := device.Get(ctx, KeyPosts)
	require.NoError(t, err)

	assert.Equal(t, usersRaw, usersAgain, "reseed must leave users byte-identical")
	assert.Equal(t, groupsRaw, groupsAgain, "reseed must leave groups byte-identical")
	assert.Equal(t, postsRaw, postsAgain, "reseed must leave posts byte-identical")
}

func TestLoginDemoGate(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	before := time.Now().UTC()
	user, err := store.Login(ctx, "trainer@salescampus.de", SentinelPassword)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, enums.RoleTrainer, user.Role)
	require.NotNil(t, user.LastLogin)
	assert.False(t, user.LastLogin.Before(before))

	current, err := store.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestLoginWrongPasswordDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	user, err := store.Login(ctx, "trainer@salescampus.de", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)

	for _, u := range store.Users(ctx) {
		if u.Email == "trainer@salescampus.de" {
			assert.Nil(t, u.LastLogin, "lastLogin must stay untouched on failed login")
		}
	}

	current, err := store.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestLoginSuspendedUserAlwaysFails(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	user, err := store.Login(ctx, "julia.becker@beispiel.de", SentinelPassword)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestLogoutClearsOnlyCurrentUser(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	_, err := store.Login(ctx, "max.mueller@beispiel.de", SentinelPassword)
	require.NoError(t, err)

	usersBefore := len(store.Users(ctx))
	store.Logout(ctx)

	current, err := store.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
	assert.Equal(t, usersBefore, len(store.Users(ctx)))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	user, err := store.Register(ctx, RegisterInput{Email: "neu@beispiel.de", Name: "Neu Nutzer"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, enums.RoleUser, user.Role)
	assert.Equal(t, 0, user.Points)
	assert.Equal(t, 1, user.Level)

	found := false
	for _, u := range store.Users(ctx) {
		if u.ID == user.ID {
			found = true
		}
	}
	assert.True(t, found, "registered user must be retrievable via Users")

	current, err := store.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	_, err = store.Register(ctx, RegisterInput{Email: "NEU@beispiel.de", Name: "Doppelt"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}

func TestUpdateUserMergesShallow(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	points := 500
	user, err := store.UpdateUser(ctx, "3", UserPatch{Points: &points})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 500, user.Points)
	assert.Equal(t, "max.mueller@beispiel.de", user.Email, "unpatched fields must survive")
	assert.Equal(t, "Max Müller", user.Name)
}

func TestUpdateUserAbsentIsHardFault(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	_, err := store.UpdateUser(ctx, "does-not-exist", UserPatch{})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestUpdateUserRefreshesCurrentUserMarker(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	logged, err := store.Login(ctx, "max.mueller@beispiel.de", SentinelPassword)
	require.NoError(t, err)
	require.NotNil(t, logged)

	bio := "Neuer Lebenslauf"
	_, err = store.UpdateUser(ctx, logged.ID, UserPatch{Bio: &bio})
	require.NoError(t, err)

	current, err := store.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, bio, current.Bio)
}

func TestUpdateGroupAbsentIsSoftMiss(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	group, err := store.UpdateGroup(ctx, "missing", GroupPatch{})
	require.NoError(t, err)
	assert.Nil(t, group)

	name := "Vertriebsgrundlagen 2027"
	group, err = store.UpdateGroup(ctx, "g1", GroupPatch{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, name, group.Name)
	assert.Equal(t, "Sandra Schmidt", group.TrainerName, "unpatched fields must survive")
}

func TestReadsOnFaultyDeviceDegradeToEmpty(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(StoreParams{
		Device: faultyDevice{},
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	require.NoError(t, err)

	assert.Empty(t, store.Users(ctx))
	assert.Empty(t, store.Groups(ctx))
	assert.Empty(t, store.Posts(ctx))

	current, err := store.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestMaterialsFlattensGroupOrder(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	materials := store.Materials(ctx)
	require.Len(t, materials, 3)
	assert.Equal(t, "m1", materials[0].ID)
	assert.Equal(t, "m2", materials[1].ID)
	assert.Equal(t, "m3", materials[2].ID)
}

type faultyDevice struct{}

func (faultyDevice) Get(context.Context, string) (string, bool, error) {
	return "", false, &storage.DeviceError{Op: storage.OpGet, Key: "any", Err: assert.AnError}
}

func (faultyDevice) Set(context.Context, string, string) error {
	return &storage.DeviceError{Op: storage.OpSet, Key: "any", Err: assert.AnError}
}

func (faultyDevice) Delete(context.Context, string) error {
	return &storage.DeviceError{Op: storage.OpDelete, Key: "any", Err: assert.AnError}
}
