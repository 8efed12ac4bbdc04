package mockapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pilotapp/crm-console/pkg/logger"
)

// Server is the mock CRUD backend. It mimics a json-server instance: flat
// resources, raw JSON bodies, string ids, no auth and no envelope.
type Server struct {
	db  *gorm.DB
	log logger.Logger
}

// NewServer creates a new mock backend server
func NewServer(db *gorm.DB, log logger.Logger) *Server {
	return &Server{db: db, log: log}
}

// Router builds the gin engine with all collection routes
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/customers", s.listCustomers)
	router.POST("/customers", s.createCustomer)
	router.GET("/customers/:id", s.getCustomer)
	router.PUT("/customers/:id", s.updateCustomer)

	router.GET("/contacts", s.listContacts)
	router.POST("/contacts", s.createContact)
	router.GET("/contacts/:id", s.getContact)
	router.PUT("/contacts/:id", s.updateContact)

	router.GET("/afrdata", s.listAFRData)
	router.POST("/afrdata", s.createAFRData)
	router.GET("/afrdata/:id", s.getAFRData)
	router.PUT("/afrdata/:id", s.updateAFRData)

	router.GET("/checklists", s.listChecklists)
	router.POST("/checklists", s.createChecklist)
	router.GET("/checklists/:id", s.getChecklist)
	router.PUT("/checklists/:id", s.updateChecklist)

	router.GET("/checklistQuestions", s.listQuestions)
	router.POST("/checklistQuestions", s.createQuestion)

	return router
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{})
		return 0, false
	}
	return uint(id), true
}

func (s *Server) respondOne(c *gin.Context, code int, record any, id uint) {
	body, err := withID(record, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	c.JSON(code, body)
}

// customers

func (s *Server) listCustomers(c *gin.Context) {
	var records []CustomerRecord
	if err := s.db.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	out := make([]any, 0, len(records))
	for _, r := range records {
		body, err := withID(r, r.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{})
			return
		}
		out = append(out, body)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createCustomer(c *gin.Context) {
	var record CustomerRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}
	record.ID = 0
	if err := s.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	s.respondOne(c, http.StatusCreated, record, record.ID)
}

func (s *Server) getCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var record CustomerRecord
	if err := s.db.First(&record, id).Error; err != nil {
		s.notFoundOrError(c, err)
		return
	}
	s.respondOne(c, http.StatusOK, record, record.ID)
}

func (s *Server) updateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var existing CustomerRecord
	if err := s.db.First(&existing, id).Error; err != nil {
		s.notFoundOrError(c, err)
		return
	}
	var record CustomerRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}
	record.ID = id
	if err := s.db.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	s.respondOne(c, http.StatusOK, record, record.ID)
}

// contacts

func (s *Server) listContacts(c *gin.Context) {
	query := s.db.Model(&ContactRecord{})
	if customerID := c.Query("customerId"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	var records []ContactRecord
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	out := make([]any, 0, len(records))
	for _, r := range records {
		body, err := withID(r, r.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{})
			return
		}
		out = append(out, body)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createContact(c *gin.Context) {
	var record ContactRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}
	record.ID = 0
	if err := s.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	s.respondOne(c, http.StatusCreated, record, record.ID)
}

func (s *Server) getContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var record ContactRecord
	if err := s.db.First(&record, id).Error; err != nil {
		s.notFoundOrError(c, err)
		return
	}
	s.respondOne(c, http.StatusOK, record, record.ID)
}

func (s *Server) updateContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var existing ContactRecord
	if err := s.db.First(&existing, id).Error; err != nil {
		s.notFoundOrError(c, err)
		return
	}
	var record ContactRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}
	record.ID = id
	if err := s.db.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	s.respondOne(c, http.StatusOK, record, record.ID)
}

// afrdata

func (s *Server) listAFRData(c *gin.Context) {
	var records []AFRDataRecord
	if err := s.db.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	out := make([]any, 0, len(records))
	for _, r := range records {
		body, err := withID(r, r.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{})
			return
		}
		out = append(out, body)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createAFRData(c *gin.Context) {
	var record AFRDataRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}
	record.ID = 0
	if err := s.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	s.respondOne(c, http.StatusCreated, record, record.ID)
}

func (s *Server) getAFRData(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var record AFRDataRecord
	if err := s.db.First(&record, id).Error; err != nil {
		s.notFoundOrError(c, err)
		return
	}
	s.respondOne(c, http.StatusOK, record, record.ID)
}

func (s *Server) updateAFRData(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var existing AFRDataRecord
	if err := s.db.First(&existing, id).Error; err != nil {
		s.notFoundOrError(c, err)
		return
	}
	var record AFRDataRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}
	record.ID = id
	if err := s.db.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	s.respondOne(c, http.StatusOK, record, record.ID)
}

// checklists

func (s *Server) listChecklists(c *gin.Context) {
	query := s.db.Model(&ChecklistRecord{})
	if customerID := c.Query("customerId"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	var records []ChecklistRecord
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	out := make([]any, 0, len(records))
	for _, r := range records {
		body, err := withID(r, r.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{})
			return
		}
		out = append(out, body)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createChecklist(c *gin.Context) {
	var record ChecklistRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}
	record.ID = 0
	if err := s.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	s.respondOne(c, http.StatusCreated, record, record.ID)
}

func (s *Server) getChecklist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var record ChecklistRecord
	if err := s.db.First(&record, id).Error; err != nil {
		s.notFoundOrError(c, err)
		return
	}
	s.respondOne(c, http.StatusOK, record, record.ID)
}

func (s *Server) updateChecklist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var existing ChecklistRecord
	if err := s.db.First(&existing, id).Error; err != nil {
		s.notFoundOrError(c, err)
		return
	}
	var record ChecklistRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}
	record.ID = id
	if err := s.db.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	s.respondOne(c, http.StatusOK, record, record.ID)
}

// checklist questions

func (s *Server) listQuestions(c *gin.Context) {
	var records []QuestionRecord
	if err := s.db.Order("length(id), id").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	c.JSON(http.StatusOK, records)
}

// createQuestion assigns the next "q"+n id server-side. Clients never send an
// id; concurrent adds are serialized by the transaction.
func (s *Server) createQuestion(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}

	var record QuestionRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&QuestionRecord{}).Count(&count).Error; err != nil {
			return err
		}
		record = QuestionRecord{
			ID:       fmt.Sprintf("q%d", count+1),
			Question: req.Question,
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (s *Server) notFoundOrError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	s.log.Error("mockapi query failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{})
}
