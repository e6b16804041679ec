package service_test

import (
	"Snapwall/internal/model"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// mockPostRepo 内存实现，模拟元数据存储的自增主键与计数列
type mockPostRepo struct {
	mu        sync.Mutex
	nextID    uint64
	posts     map[uint64]*model.Post
	createErr error
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{
		nextID: 1,
		posts:  make(map[uint64]*model.Post),
	}
}

func (m *mockPostRepo) CreatePost(_ context.Context, post *model.Post) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	post.ID = m.nextID
	m.nextID++
	cp := *post
	m.posts[post.ID] = &cp
	return nil
}

func (m *mockPostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *post
	return &cp, nil
}

func (m *mockPostRepo) ListPosts(_ context.Context) ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []*model.Post
	for id := m.nextID - 1; id >= 1; id-- {
		if post, ok := m.posts[id]; ok {
			cp := *post
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (m *mockPostRepo) ExistsByMediaURL(_ context.Context, mediaURL string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, post := range m.posts {
		if post.MediaURL == mediaURL {
			return true, nil
		}
	}
	return false, nil
}

type likeKey struct {
	postID uint64
	userIP string
}

// mockActionRepo 模拟联合主键约束与原子计数更新的事务语义
type mockActionRepo struct {
	mu       sync.Mutex
	posts    *mockPostRepo
	likes    map[likeKey]struct{}
	comments []*model.Comment
	nextID   uint64
}

func newMockActionRepo(posts *mockPostRepo) *mockActionRepo {
	return &mockActionRepo{
		posts:  posts,
		likes:  make(map[likeKey]struct{}),
		nextID: 1,
	}
}

func (m *mockActionRepo) CreateLike(_ context.Context, like *model.Like) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := likeKey{postID: like.PostID, userIP: like.UserIP}
	if _, ok := m.likes[key]; ok {
		return nil, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	}

	m.posts.mu.Lock()
	defer m.posts.mu.Unlock()
	post, ok := m.posts.posts[like.PostID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	m.likes[key] = struct{}{}
	post.LikesCount++
	cp := *post
	return &cp, nil
}

func (m *mockActionRepo) CheckLikeExists(_ context.Context, postID uint64, userIP string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.likes[likeKey{postID: postID, userIP: userIP}]
	return ok, nil
}

func (m *mockActionRepo) GetLikeCountByPostID(_ context.Context, postID uint64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for key := range m.likes {
		if key.postID == postID {
			count++
		}
	}
	return count, nil
}

func (m *mockActionRepo) CreateComment(_ context.Context, comment *model.Comment) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.posts.mu.Lock()
	defer m.posts.mu.Unlock()
	post, ok := m.posts.posts[comment.PostID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	comment.ID = m.nextID
	m.nextID++
	cp := *comment
	m.comments = append(m.comments, &cp)
	post.CommentsCount++
	pcp := *post
	return &pcp, nil
}

func (m *mockActionRepo) GetCommentsByPostID(_ context.Context, postID uint64) ([]*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*model.Comment
	for i := len(m.comments) - 1; i >= 0; i-- {
		if m.comments[i].PostID == postID {
			cp := *m.comments[i]
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (m *mockActionRepo) GetCommentCountByPostID(_ context.Context, postID uint64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, c := range m.comments {
		if c.PostID == postID {
			count++
		}
	}
	return count, nil
}

// mockBlobStore 内存对象存储，每次调用独立原子
type mockBlobStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	uploadErr error
}

func newMockBlobStore() *mockBlobStore {
	return &mockBlobStore{
		objects: make(map[string][]byte),
	}
}

func (m *mockBlobStore) Upload(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectName] = data
	return objectName, nil
}

func (m *mockBlobStore) PublicURL(objectName string) string {
	return fmt.Sprintf("http://blob.test/media/%s", objectName)
}

func (m *mockBlobStore) Delete(_ context.Context, objectName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[objectName]; !ok {
		return errors.New("object not found")
	}
	delete(m.objects, objectName)
	return nil
}

func (m *mockBlobStore) objectCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
