package repositories

import (
	"gorm.io/gorm"

	"motohub-api/models"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id string) (*models.Comment, error)
	GetByMotorcycle(motorcycleID string) ([]models.Comment, error)
	DeleteTree(comment *models.Comment) (deleted int64, err error)
	Like(id string) error
	Unlike(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return err
	}

	if comment.ParentID != nil {
		return r.db.Model(&models.Comment{}).
			Where("id = ?", *comment.ParentID).
			UpdateColumn("replies_count", gorm.Expr("replies_count + ?", 1)).Error
	}
	return nil
}

func (r *commentRepository) GetByID(id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetByMotorcycle(motorcycleID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.Preload("User").
		Where("motorcycle_id = ?", motorcycleID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// DeleteTree removes the comment and every descendant, walking the reply
// chain level by level. Deleting only direct children would orphan
// deeper replies.
func (r *commentRepository) DeleteTree(comment *models.Comment) (int64, error) {
	ids := []string{comment.ID}
	frontier := []string{comment.ID}

	for len(frontier) > 0 {
		var childIDs []string
		err := r.db.Model(&models.Comment{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &childIDs).Error
		if err != nil {
			return 0, err
		}
		ids = append(ids, childIDs...)
		frontier = childIDs
	}

	result := r.db.Where("id IN ?", ids).Delete(&models.Comment{})
	if result.Error != nil {
		return 0, result.Error
	}

	if comment.ParentID != nil {
		err := r.db.Model(&models.Comment{}).
			Where("id = ?", *comment.ParentID).
			UpdateColumn("replies_count", gorm.Expr("GREATEST(replies_count - ?, 0)", 1)).Error
		if err != nil {
			return result.RowsAffected, err
		}
	}

	return result.RowsAffected, nil
}

func (r *commentRepository) Like(id string) error {
	result := r.db.Model(&models.Comment{}).
		Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) Unlike(id string) error {
	result := r.db.Model(&models.Comment{}).
		Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("GREATEST(likes_count - ?, 0)", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BuildCommentTree nests comments under their parents and returns only
// the roots, children ordered as given (creation order)
func BuildCommentTree(comments []models.Comment) []*models.CommentNode {
	nodes := make(map[string]*models.CommentNode, len(comments))
	roots := []*models.CommentNode{}

	for i := range comments {
		nodes[comments[i].ID] = &models.CommentNode{
			Comment: comments[i],
			Replies: []*models.CommentNode{},
		}
	}

	for i := range comments {
		node := nodes[comments[i].ID]
		if comments[i].ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*comments[i].ParentID]
		if !ok {
			// Parent was deleted out from under the reply; surface the
			// reply as a root rather than dropping it
			roots = append(roots, node)
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}

	return roots
}
