package wire

import (
	"Snapwall/internal/api"
	"Snapwall/internal/api/handler"
	"Snapwall/internal/job"
	"Snapwall/internal/pkg/cron"
	"Snapwall/internal/pkg/minio"
	"Snapwall/internal/repository"
	"Snapwall/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	actionRepo := repository.NewPostActionRepo(db)

	blobStore := minio.NewStore()

	postService := service.NewPostService(postRepo, blobStore)
	actionService := service.NewPostActionService(actionRepo)

	handlers := &api.HandlersGroup{
		PostHandler:       handler.NewPostHandler(postService),
		MediaHandler:      handler.NewMediaHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(actionService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewMediaCleanupJob(postRepo))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
