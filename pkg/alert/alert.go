package alert

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/datatypes"

	"github.com/mosala-labs/mosala-backend/dao/model"
	"github.com/mosala-labs/mosala-backend/dao/query"
	"github.com/mosala-labs/mosala-backend/pkg/logutils"
)

type alertMgr struct {
	handler mailHandlerInterface
}

var (
	once    sync.Once
	alerter *alertMgr
)

func GetAlertMgr() AlertInterface {
	once.Do(func() {
		alerter = &alertMgr{handler: newSMTPMailer()}
	})
	return alerter
}

const fireAndForgetTimeout = 30 * time.Second

// FireAndForget runs fn in a detached goroutine with its own timeout. It is
// the structural form of "never block or fail the caller": panics are
// recovered and errors are logged, nothing propagates back.
func FireAndForget(name string, fn func(ctx context.Context) error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logutils.Log.WithField("task", name).Errorf("panic in background task: %v", r)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), fireAndForgetTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			logutils.Log.WithField("task", name).Warnf("background task failed: %v", err)
		}
	}()
}

// loadApplication fetches an application with the rows every notification
// needs: project, need and applicant.
func (a *alertMgr) loadApplication(ctx context.Context, applicationID uint) (*model.ProjectNeedApplication, error) {
	var app model.ProjectNeedApplication
	err := query.GetDB().WithContext(ctx).
		Preload("Project").
		Preload("ProjectNeed").
		Preload("Applicant").
		First(&app, applicationID).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (a *alertMgr) enqueueInApp(ctx context.Context, n *model.Notification) {
	if err := query.GetDB().WithContext(ctx).Create(n).Error; err != nil {
		logutils.Log.Warnf("failed to enqueue in-app notification for user %d: %v", n.UserID, err)
	}
}

func displayName(u *model.User) string {
	if u.Nickname != nil && *u.Nickname != "" {
		return *u.Nickname
	}
	return u.Name
}

func (a *alertMgr) ApplicationSubmitted(ctx context.Context, applicationID uint) error {
	app, err := a.loadApplication(ctx, applicationID)
	if err != nil {
		return err
	}
	var owner model.User
	if err := query.GetDB().WithContext(ctx).First(&owner, app.OwnerUserID).Error; err != nil {
		return err
	}

	a.enqueueInApp(ctx, &model.Notification{
		UserID:            owner.ID,
		Type:              model.NotifyApplicationReceived,
		Title:             submittedSubject(app.Project.Title),
		Message:           submittedBody(displayName(&owner), displayName(&app.Applicant), app.Project.Title, app.ProjectNeed.Title),
		ProjectID:         &app.ProjectID,
		TriggeredByUserID: &app.ApplicantUserID,
		Metadata:          datatypes.JSON(fmt.Sprintf(`{"applicationID":%d,"needID":%d}`, app.ID, app.ProjectNeedID)),
	})

	_, err = a.handler.SendMessageTo(ctx, &owner,
		submittedSubject(app.Project.Title),
		submittedBody(displayName(&owner), displayName(&app.Applicant), app.Project.Title, app.ProjectNeed.Title))
	return err
}

func (a *alertMgr) ApplicationDecided(ctx context.Context, applicationID uint, decision model.ReviewDecision, note string) error {
	app, err := a.loadApplication(ctx, applicationID)
	if err != nil {
		return err
	}

	a.enqueueInApp(ctx, &model.Notification{
		UserID:            app.ApplicantUserID,
		Type:              model.NotifyApplicationDecided,
		Title:             decisionSubject(decision, app.Project.Title),
		Message:           decisionBody(displayName(&app.Applicant), app.Project.Title, app.ProjectNeed.Title, decision, note),
		ProjectID:         &app.ProjectID,
		TriggeredByUserID: app.DecidedByUserID,
		Metadata:          datatypes.JSON(fmt.Sprintf(`{"applicationID":%d,"decision":%q}`, app.ID, decision)),
	})

	sent, err := a.handler.SendMessageTo(ctx, &app.Applicant,
		decisionSubject(decision, app.Project.Title),
		decisionBody(displayName(&app.Applicant), app.Project.Title, app.ProjectNeed.Title, decision, note))
	if err == nil && !sent {
		logutils.Log.Infof("decision email for application %d skipped, applicant has no address", app.ID)
	}
	return err
}

func (a *alertMgr) EquityAnomaly(ctx context.Context, projectID uint, totalAllocated int) error {
	db := query.GetDB().WithContext(ctx)

	var project model.Project
	if err := db.First(&project, projectID).Error; err != nil {
		return err
	}

	var admins []model.User
	if err := db.Where("role = ?", model.RoleAdmin).Find(&admins).Error; err != nil {
		return err
	}
	for i := range admins {
		a.enqueueInApp(ctx, &model.Notification{
			UserID:    admins[i].ID,
			Type:      model.NotifyEquityAnomaly,
			Title:     anomalySubject(project.Title),
			Message:   anomalyBody(project.Title, project.ID, totalAllocated),
			ProjectID: &project.ID,
			Metadata:  datatypes.JSON(fmt.Sprintf(`{"totalAllocated":%d}`, totalAllocated)),
		})
	}
	return nil
}
