package repository

import (
	"context"
	"fmt"

	"github.com/blogbuster/database"
	"github.com/blogbuster/pkg/gorm"
	baseGorm "gorm.io/gorm"
)

const widgetsOrder = "sidebar_widgets.sort_order asc, sidebar_widgets.created_at asc, sidebar_widgets.id asc"

type configLoader func(query *baseGorm.DB, widgetIDs []uint64) ([]database.WidgetConfig, error)

var configLoaders = map[database.WidgetType]configLoader{
	database.WidgetPopularPosts: fetchConfigs[database.PopularPostsWidget],
	database.WidgetRelatedPosts: fetchConfigs[database.RelatedPostsWidget],
	database.WidgetAuthorBio:    fetchConfigs[database.AuthorBioWidget],
	database.WidgetSocialShare:  fetchConfigs[database.SocialShareWidget],
	database.WidgetNewsletter:   fetchConfigs[database.NewsletterWidget],
	database.WidgetCategories:   fetchConfigs[database.CategoriesWidget],
	database.WidgetRecentPosts:  fetchConfigs[database.RecentPostsWidget],
	database.WidgetQuickTips:    fetchConfigs[database.QuickTipsWidget],
	database.WidgetBuyingGuides: fetchConfigs[database.BuyingGuidesWidget],
}

type Widgets struct {
	DB *database.Connection
}

// Create stores a widget and, when given, its config. Only one widget may
// exist per type.
func (w Widgets) Create(ctx context.Context, attrs database.WidgetAttrs) (*database.SidebarWidget, error) {
	if err := validate(attrs); err != nil {
		return nil, err
	}

	if !attrs.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", database.ErrUnknownWidgetType, attrs.Type)
	}

	widget := database.SidebarWidget{
		WidgetType: attrs.Type,
		Title:      attrs.Title,
		IsActive:   attrs.IsActive,
		SortOrder:  attrs.SortOrder,
	}

	if err := widget.SetConfig(attrs.Config); err != nil {
		return nil, fmt.Errorf("widget [%s]: %w", attrs.Type, err)
	}

	err := w.DB.Sql().WithContext(ctx).Transaction(func(tx *baseGorm.DB) error {
		if err := tx.Create(&widget).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return fmt.Errorf("%w: %s", database.ErrWidgetTypeTaken, attrs.Type)
			}

			return err
		}

		if attrs.Config == nil {
			return nil
		}

		return w.storeConfig(tx, &widget, attrs.Config)
	})

	if err != nil {
		return nil, fmt.Errorf("issue creating widget [%s]: %w", attrs.Type, err)
	}

	return &widget, nil
}

// SetConfig replaces the stored config of widget.
func (w Widgets) SetConfig(ctx context.Context, widget *database.SidebarWidget, cfg database.WidgetConfig) error {
	if cfg == nil {
		return fmt.Errorf("widget [%s]: nil config", widget.WidgetType)
	}

	if cfg.WidgetType() != widget.WidgetType {
		return fmt.Errorf("widget [%s] given %s config: %w", widget.WidgetType, cfg.WidgetType(), database.ErrWidgetConfigMismatch)
	}

	err := w.DB.Sql().WithContext(ctx).Transaction(func(tx *baseGorm.DB) error {
		return w.storeConfig(tx, widget, cfg)
	})

	if err != nil {
		return fmt.Errorf("issue storing widget [%s] config: %w", widget.WidgetType, err)
	}

	return nil
}

func (w Widgets) storeConfig(tx *baseGorm.DB, widget *database.SidebarWidget, cfg database.WidgetConfig) error {
	if err := widget.SetConfig(cfg); err != nil {
		return err
	}

	if err := tx.Where("widget_id = ?", widget.ID).Delete(newConfig(widget.WidgetType)).Error; err != nil {
		return err
	}

	return tx.Omit("Widget").Create(cfg).Error
}

// Active lists enabled widgets in display order with their configs attached.
func (w Widgets) Active(ctx context.Context) ([]database.SidebarWidget, error) {
	return w.list(ctx, true)
}

func (w Widgets) All(ctx context.Context) ([]database.SidebarWidget, error) {
	return w.list(ctx, false)
}

func (w Widgets) FindByType(ctx context.Context, widgetType database.WidgetType) (*database.SidebarWidget, error) {
	var widget database.SidebarWidget

	err := w.DB.Sql().
		WithContext(ctx).
		Where("widget_type = ?", widgetType).
		First(&widget).Error

	if gorm.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("issue finding widget [%s]: %w", widgetType, err)
	}

	widgets := []database.SidebarWidget{widget}
	if err := w.attachConfigs(ctx, widgets); err != nil {
		return nil, err
	}

	return &widgets[0], nil
}

func (w Widgets) list(ctx context.Context, onlyActive bool) ([]database.SidebarWidget, error) {
	var widgets []database.SidebarWidget

	query := w.DB.Sql().WithContext(ctx).Order(widgetsOrder)

	if onlyActive {
		query = query.Where("sidebar_widgets.is_active = ?", true)
	}

	if err := query.Find(&widgets).Error; err != nil {
		return nil, fmt.Errorf("issue listing widgets: %w", err)
	}

	if err := w.attachConfigs(ctx, widgets); err != nil {
		return nil, err
	}

	return widgets, nil
}

// attachConfigs issues one query per widget type present in widgets.
func (w Widgets) attachConfigs(ctx context.Context, widgets []database.SidebarWidget) error {
	byType := make(map[database.WidgetType][]uint64)
	byID := make(map[uint64]*database.SidebarWidget, len(widgets))

	for i := range widgets {
		byType[widgets[i].WidgetType] = append(byType[widgets[i].WidgetType], widgets[i].ID)
		byID[widgets[i].ID] = &widgets[i]
	}

	for widgetType, ids := range byType {
		load, ok := configLoaders[widgetType]
		if !ok {
			continue
		}

		configs, err := load(w.DB.Sql().WithContext(ctx), ids)
		if err != nil {
			return fmt.Errorf("issue loading %s configs: %w", widgetType, err)
		}

		for _, cfg := range configs {
			widget, ok := byID[cfg.OwnerID()]
			if !ok {
				continue
			}

			if err := widget.SetConfig(cfg); err != nil {
				return err
			}
		}
	}

	return nil
}

func fetchConfigs[T any, P interface {
	*T
	database.WidgetConfig
}](query *baseGorm.DB, widgetIDs []uint64) ([]database.WidgetConfig, error) {
	var rows []T

	if err := query.Where("widget_id IN ?", widgetIDs).Find(&rows).Error; err != nil {
		return nil, err
	}

	configs := make([]database.WidgetConfig, len(rows))
	for i := range rows {
		configs[i] = P(&rows[i])
	}

	return configs, nil
}

func newConfig(widgetType database.WidgetType) database.WidgetConfig {
	switch widgetType {
	case database.WidgetPopularPosts:
		return &database.PopularPostsWidget{}
	case database.WidgetRelatedPosts:
		return &database.RelatedPostsWidget{}
	case database.WidgetAuthorBio:
		return &database.AuthorBioWidget{}
	case database.WidgetSocialShare:
		return &database.SocialShareWidget{}
	case database.WidgetNewsletter:
		return &database.NewsletterWidget{}
	case database.WidgetCategories:
		return &database.CategoriesWidget{}
	case database.WidgetRecentPosts:
		return &database.RecentPostsWidget{}
	case database.WidgetQuickTips:
		return &database.QuickTipsWidget{}
	default:
		return &database.BuyingGuidesWidget{}
	}
}
