package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/dumbcam/internal/application/port/mocks"
	"github.com/bnema/dumbcam/internal/application/usecase"
	"github.com/bnema/dumbcam/internal/domain/entity"
)

func TestCheckPermissionsUseCase_StoragePermissionByLevel(t *testing.T) {
	oracle := portmocks.NewMockPermissionOracle(t)

	modern := usecase.NewCheckPermissionsUseCase(oracle, 33)
	legacy := usecase.NewCheckPermissionsUseCase(oracle, 28)

	assert.Equal(t, entity.OSPermissionReadMediaImages, modern.StoragePermission())
	assert.Equal(t, entity.OSPermissionWriteExternalStorage, legacy.StoragePermission())
	assert.Equal(t,
		[]entity.OSPermission{entity.OSPermissionCamera, entity.OSPermissionWriteExternalStorage},
		legacy.RequiredPermissions(),
	)
}

func TestCheckPermissionsUseCase_Check(t *testing.T) {
	ctx := testContext()
	oracle := portmocks.NewMockPermissionOracle(t)
	oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(true)
	oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionReadMediaImages).Return(false)

	uc := usecase.NewCheckPermissionsUseCase(oracle, 34)
	out := uc.Check(ctx)

	assert.False(t, out.AllGranted)
	assert.Equal(t, []entity.OSPermission{entity.OSPermissionReadMediaImages}, out.Missing())
	assert.True(t, uc.IsCameraGranted(ctx))
	assert.False(t, uc.IsStorageGranted(ctx))
}

func TestCheckPermissionsUseCase_RequestMissing_NothingMissing(t *testing.T) {
	ctx := testContext()
	oracle := portmocks.NewMockPermissionOracle(t)
	oracle.EXPECT().IsGranted(mock.Anything, mock.Anything).Return(true)

	uc := usecase.NewCheckPermissionsUseCase(oracle, 34)
	out, err := uc.RequestMissing(ctx)

	require.NoError(t, err)
	assert.True(t, out.AllGranted)
	oracle.AssertNotCalled(t, "Request", mock.Anything, mock.Anything)
}

func TestCheckPermissionsUseCase_RequestMissing_RequestsOnlyMissing(t *testing.T) {
	ctx := testContext()
	oracle := portmocks.NewMockPermissionOracle(t)
	oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(false).Once()
	oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionWriteExternalStorage).Return(true)
	oracle.EXPECT().Request(mock.Anything, []entity.OSPermission{entity.OSPermissionCamera}).
		Return(map[entity.OSPermission]bool{entity.OSPermissionCamera: true}, nil)
	oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(true).Once()

	uc := usecase.NewCheckPermissionsUseCase(oracle, 28)
	out, err := uc.RequestMissing(ctx)

	require.NoError(t, err)
	assert.True(t, out.AllGranted)
}

func TestCheckPermissionsUseCase_RequestMissing_Error(t *testing.T) {
	ctx := testContext()
	oracle := portmocks.NewMockPermissionOracle(t)
	oracle.EXPECT().IsGranted(mock.Anything, mock.Anything).Return(false)
	oracle.EXPECT().Request(mock.Anything, mock.Anything).Return(nil, errors.New("no prompt available"))

	uc := usecase.NewCheckPermissionsUseCase(oracle, 34)
	out, err := uc.RequestMissing(ctx)

	require.Error(t, err)
	assert.False(t, out.AllGranted)
	assert.Len(t, out.Missing(), 2)
}
