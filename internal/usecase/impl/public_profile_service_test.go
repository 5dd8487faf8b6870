package impl

import (
	"context"
	"testing"

	"profilecard/internal/domain/entity"
	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/domain/repository"
	mockRepo "profilecard/internal/mocks/repository"
	mockSvc "profilecard/internal/mocks/service"
	"profilecard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publicProfileFixtures struct {
	service     usecase.PublicProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	qrCode      *mockSvc.MockQRCodeService
}

func createTestPublicProfileService(t *testing.T, nameMatch string) publicProfileFixtures {
	t.Helper()

	profileRepo := mockRepo.NewMockProfileRepository(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	cfg := newTestConfig()
	if nameMatch != "" {
		cfg.Resolver.NameMatch = nameMatch
	}

	srv, err := NewPublicProfileService(PublicProfileServiceParams{
		ProfileRepo: profileRepo,
		QRCode:      qrCode,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})
	require.NoError(t, err)

	return publicProfileFixtures{
		service:     srv,
		profileRepo: profileRepo,
		qrCode:      qrCode,
	}
}

func sampleAggregate(name, username string) *entity.ProfileAggregate {
	id := uuid.New()

	return &entity.ProfileAggregate{
		Profile: &entity.Profile{
			ID:       id,
			Username: username,
			Name:     name,
			Tagline:  "Coffee & Code",
		},
		SocialLinks: []*entity.SocialLink{
			{ProfileID: id, Platform: entity.PlatformTwitter, URL: "https://x.com/" + username},
		},
		GalleryImages: []*entity.GalleryImage{
			{ProfileID: id, ImageURL: "https://img/2.jpg", OrderIndex: 2},
			{ProfileID: id, ImageURL: "https://img/1.jpg", OrderIndex: 1},
		},
	}
}

func TestNewPublicProfileService_InvalidNameMatch(t *testing.T) {
	cfg := newTestConfig()
	cfg.Resolver.NameMatch = "random"

	_, err := NewPublicProfileService(PublicProfileServiceParams{
		ProfileRepo: mockRepo.NewMockProfileRepository(t),
		QRCode:      mockSvc.NewMockQRCodeService(t),
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})
	assert.Error(t, err)
}

func TestPublicProfileService_Resolve_ByUsername(t *testing.T) {
	fx := createTestPublicProfileService(t, "")
	ctx := context.Background()
	agg := sampleAggregate("Jane Doe", "jane-doe")

	fx.profileRepo.EXPECT().FindByUsername(ctx, "jane-doe").Return(agg, nil)

	got, err := fx.service.Resolve(ctx, "jane-doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Profile.Name)
	assert.Equal(t, "https://cards.example.com/u/jane-doe", got.ProfileURL)
	assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, got.Profile.Gallery)
	assert.Equal(t, "Jane Doe - Coffee & Code", got.SEO.Title)
}

func TestPublicProfileService_Resolve_FallsBackToID(t *testing.T) {
	fx := createTestPublicProfileService(t, "")
	ctx := context.Background()
	agg := sampleAggregate("No Handle", "")
	id := agg.Profile.ID

	fx.profileRepo.EXPECT().FindByUsername(ctx, id.String()).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().FindByID(ctx, id).Return(agg, nil)

	got, err := fx.service.Resolve(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, id.String(), got.Profile.ID)
	assert.Equal(t, "https://cards.example.com/u/"+id.String(), got.ProfileURL)
}

func TestPublicProfileService_Resolve_FallsBackToName(t *testing.T) {
	fx := createTestPublicProfileService(t, "oldest")
	ctx := context.Background()
	agg := sampleAggregate("Alex Morgan", "alex")

	fx.profileRepo.EXPECT().FindByUsername(ctx, "morgan").Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().
		FindByNameFragment(ctx, "morgan", entity.NameMatchOldest, 1).
		Return([]*entity.ProfileAggregate{agg}, nil)

	got, err := fx.service.Resolve(ctx, "morgan")
	require.NoError(t, err)
	assert.Equal(t, "Alex Morgan", got.Profile.Name)
}

func TestPublicProfileService_Resolve_NotFound(t *testing.T) {
	fx := createTestPublicProfileService(t, "")
	ctx := context.Background()
	id := uuid.New()

	fx.profileRepo.EXPECT().FindByUsername(ctx, id.String()).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().
		FindByNameFragment(ctx, id.String(), entity.NameMatchOldest, 1).
		Return([]*entity.ProfileAggregate{}, nil)

	got, err := fx.service.Resolve(ctx, id.String())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestPublicProfileService_Resolve_EmptyIdentifier(t *testing.T) {
	fx := createTestPublicProfileService(t, "")

	got, err := fx.service.Resolve(context.Background(), "   ")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestPublicProfileService_Resolve_RejectAmbiguous(t *testing.T) {
	fx := createTestPublicProfileService(t, "reject")
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByUsername(ctx, "sam").Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().
		FindByNameFragment(ctx, "sam", entity.NameMatchReject, 2).
		Return([]*entity.ProfileAggregate{sampleAggregate("Sam A", "a"), sampleAggregate("Sam B", "b")}, nil)

	got, err := fx.service.Resolve(ctx, "sam")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrProfileAmbiguous)
}

func TestPublicProfileService_Resolve_StoreErrorPropagates(t *testing.T) {
	fx := createTestPublicProfileService(t, "")
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByUsername(ctx, "jane").Return(nil, errors.New("connection refused"))

	got, err := fx.service.Resolve(ctx, "jane")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestPublicProfileService_ResolveDefault(t *testing.T) {
	fx := createTestPublicProfileService(t, "")
	ctx := context.Background()
	agg := sampleAggregate("First", "first")

	fx.profileRepo.EXPECT().FindFirst(ctx).Return(agg, nil)
	got, err := fx.service.ResolveDefault(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Profile.Name)

	fx.profileRepo.EXPECT().FindByID(ctx, agg.Profile.ID).Return(agg, nil)
	got, err = fx.service.ResolveDefault(ctx, agg.Profile.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "first", got.Profile.Username)

	_, err = fx.service.ResolveDefault(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestPublicProfileService_ResolveDefault_EmptyStore(t *testing.T) {
	fx := createTestPublicProfileService(t, "")
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindFirst(ctx).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.ResolveDefault(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestPublicProfileService_QRCode(t *testing.T) {
	fx := createTestPublicProfileService(t, "")
	ctx := context.Background()
	agg := sampleAggregate("Jane Doe", "jane-doe")
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.profileRepo.EXPECT().FindByUsername(ctx, "jane-doe").Return(agg, nil)
	fx.qrCode.EXPECT().GenerateProfileQR("https://cards.example.com/u/jane-doe").Return(png, nil)

	got, err := fx.service.QRCode(ctx, "jane-doe")
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestProfileURL(t *testing.T) {
	p := &entity.Profile{ID: uuid.MustParse("6f1c1f9e-4d7a-4b8e-9a55-0e4c2b1d7a10"), Username: "jane doe"}
	assert.Equal(t, "https://x.test/u/jane%20doe", ProfileURL("https://x.test", p))

	p.Username = ""
	assert.Equal(t, "https://x.test/u/6f1c1f9e-4d7a-4b8e-9a55-0e4c2b1d7a10", ProfileURL("https://x.test", p))
	assert.Equal(t, "https://x.test/", ProfileURL("https://x.test", nil))
}
