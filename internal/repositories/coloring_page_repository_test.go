package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/coloringbook/backend/internal/models"
)

// pageDoc builds a stored coloring page document for mock cursor responses
func pageDoc(id, name, category string, createdAt time.Time) bson.D {
	return bson.D{
		{Key: "id", Value: id},
		{Key: "name", Value: name},
		{Key: "category", Value: category},
		{Key: "difficulty", Value: "medium"},
		{Key: "svg_content", Value: "<svg viewBox='0 0 10 10'/>"},
		{Key: "created_at", Value: createdAt},
	}
}

func TestColoringPageRepository_GetAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success without filter", func(mt *mtest.T) {
		repo := NewColoringPageRepository(mt.DB)
		ns := mt.DB.Name() + ".coloring_pages"
		createdAt := time.Now().UTC().Truncate(time.Millisecond)

		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, pageDoc("page-1", "Cute Cat", "animals", createdAt))
		second := mtest.CreateCursorResponse(0, ns, mtest.NextBatch, pageDoc("page-2", "Fast Car", "vehicles", createdAt))
		mt.AddMockResponses(first, second)

		pages, err := repo.GetAll(context.Background(), "")

		require.NoError(mt.T, err)
		require.Len(mt.T, pages, 2)
		assert.Equal(mt.T, "page-1", pages[0].ID)
		assert.Equal(mt.T, "Cute Cat", pages[0].Name)
		assert.Equal(mt.T, "page-2", pages[1].ID)

		// The list query must carry the 100-document cap
		evt := mt.GetStartedEvent()
		require.NotNil(mt.T, evt)
		assert.Equal(mt.T, "find", evt.CommandName)
		limit, lookupErr := evt.Command.LookupErr("limit")
		require.NoError(mt.T, lookupErr)
		assert.Equal(mt.T, int64(100), limit.AsInt64())
	})

	mt.Run("success with category filter", func(mt *mtest.T) {
		repo := NewColoringPageRepository(mt.DB)
		ns := mt.DB.Name() + ".coloring_pages"
		createdAt := time.Now().UTC().Truncate(time.Millisecond)

		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, pageDoc("page-1", "Cute Cat", "animals", createdAt))
		second := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, second)

		pages, err := repo.GetAll(context.Background(), "animals")

		require.NoError(mt.T, err)
		require.Len(mt.T, pages, 1)
		assert.Equal(mt.T, "animals", pages[0].Category)

		// The filter must be an exact category equality match
		evt := mt.GetStartedEvent()
		require.NotNil(mt.T, evt)
		filterCategory, lookupErr := evt.Command.LookupErr("filter", "category")
		require.NoError(mt.T, lookupErr)
		assert.Equal(mt.T, "animals", filterCategory.StringValue())
	})

	mt.Run("empty result returns empty slice", func(mt *mtest.T) {
		repo := NewColoringPageRepository(mt.DB)
		ns := mt.DB.Name() + ".coloring_pages"

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		pages, err := repo.GetAll(context.Background(), "nonexistent")

		require.NoError(mt.T, err)
		assert.NotNil(mt.T, pages)
		assert.Empty(mt.T, pages)
	})

	mt.Run("database error", func(mt *mtest.T) {
		repo := NewColoringPageRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11601,
			Message: "operation was interrupted",
			Name:    "Interrupted",
		}))

		pages, err := repo.GetAll(context.Background(), "")

		assert.Error(mt.T, err)
		assert.Nil(mt.T, pages)
	})
}

func TestColoringPageRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewColoringPageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		thumbnail := "data:image/png;base64,iVBOR"
		req := &models.CreateColoringPageRequest{
			Name:       "Cute Cat",
			Category:   "animals",
			Difficulty: "easy",
			SVGContent: "<svg viewBox='0 0 10 10'/>",
			Thumbnail:  &thumbnail,
		}

		page, err := repo.Create(context.Background(), req)

		require.NoError(mt.T, err)
		require.NotNil(mt.T, page)
		assert.NotEmpty(mt.T, page.ID)
		assert.Equal(mt.T, req.Name, page.Name)
		assert.Equal(mt.T, req.Category, page.Category)
		assert.Equal(mt.T, req.Difficulty, page.Difficulty)
		assert.Equal(mt.T, req.SVGContent, page.SVGContent)
		assert.Equal(mt.T, req.Thumbnail, page.Thumbnail)
		assert.WithinDuration(mt.T, time.Now().UTC(), page.CreatedAt, time.Minute)
	})

	mt.Run("generated ids are unique", func(mt *mtest.T) {
		repo := NewColoringPageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		req := &models.CreateColoringPageRequest{
			Name:       "Cute Cat",
			Category:   "animals",
			Difficulty: "easy",
			SVGContent: "<svg/>",
		}

		first, err := repo.Create(context.Background(), req)
		require.NoError(mt.T, err)
		second, err := repo.Create(context.Background(), req)
		require.NoError(mt.T, err)

		assert.NotEqual(mt.T, first.ID, second.ID)
	})

	mt.Run("write error on insert", func(mt *mtest.T) {
		repo := NewColoringPageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		req := &models.CreateColoringPageRequest{
			Name:       "Cute Cat",
			Category:   "animals",
			Difficulty: "easy",
			SVGContent: "<svg/>",
		}

		page, err := repo.Create(context.Background(), req)

		assert.Error(mt.T, err)
		assert.Nil(mt.T, page)
	})
}

func TestColoringPageRepository_GetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewColoringPageRepository(mt.DB)
		ns := mt.DB.Name() + ".coloring_pages"
		createdAt := time.Now().UTC().Truncate(time.Millisecond)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, pageDoc("page-1", "Cute Cat", "animals", createdAt)))

		page, err := repo.GetByID(context.Background(), "page-1")

		require.NoError(mt.T, err)
		require.NotNil(mt.T, page)
		assert.Equal(mt.T, "page-1", page.ID)
		assert.Equal(mt.T, "Cute Cat", page.Name)
		assert.True(mt.T, createdAt.Equal(page.CreatedAt))
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewColoringPageRepository(mt.DB)
		ns := mt.DB.Name() + ".coloring_pages"

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		page, err := repo.GetByID(context.Background(), "nonexistent-id")

		require.Error(mt.T, err)
		assert.Nil(mt.T, page)
		assert.Contains(mt.T, err.Error(), "not found")
	})

	mt.Run("database error", func(mt *mtest.T) {
		repo := NewColoringPageRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11601,
			Message: "operation was interrupted",
			Name:    "Interrupted",
		}))

		page, err := repo.GetByID(context.Background(), "page-1")

		assert.Error(mt.T, err)
		assert.Nil(mt.T, page)
	})
}

func TestColoringPageRepository_Count(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewColoringPageRepository(mt.DB)
		ns := mt.DB.Name() + ".coloring_pages"

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int64(3)}}))

		count, err := repo.Count(context.Background())

		require.NoError(mt.T, err)
		assert.Equal(mt.T, int64(3), count)
	})

	mt.Run("database error", func(mt *mtest.T) {
		repo := NewColoringPageRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11601,
			Message: "operation was interrupted",
			Name:    "Interrupted",
		}))

		count, err := repo.Count(context.Background())

		assert.Error(mt.T, err)
		assert.Zero(mt.T, count)
	})
}
