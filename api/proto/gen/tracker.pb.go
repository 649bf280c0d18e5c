// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: tracker.proto

package gen

import (
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// ADDED is an upsert: it carries the full record whenever one enters the
// viewer's visible set, including a record toggled back to public. CHANGED
// only updates a record the stream already delivered. REMOVED carries the
// id alone; ids never delivered may be ignored.
type EventType int32

const (
	EventType_EVENT_TYPE_UNSPECIFIED EventType = 0
	EventType_EVENT_TYPE_ADDED       EventType = 1
	EventType_EVENT_TYPE_CHANGED     EventType = 2
	EventType_EVENT_TYPE_REMOVED     EventType = 3
)

// Enum value maps for EventType.
var (
	EventType_name = map[int32]string{
		0: "EVENT_TYPE_UNSPECIFIED",
		1: "EVENT_TYPE_ADDED",
		2: "EVENT_TYPE_CHANGED",
		3: "EVENT_TYPE_REMOVED",
	}
	EventType_value = map[string]int32{
		"EVENT_TYPE_UNSPECIFIED": 0,
		"EVENT_TYPE_ADDED":       1,
		"EVENT_TYPE_CHANGED":     2,
		"EVENT_TYPE_REMOVED":     3,
	}
)

func (x EventType) Enum() *EventType {
	p := new(EventType)
	*p = x
	return p
}

func (x EventType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (EventType) Descriptor() protoreflect.EnumDescriptor {
	return file_tracker_proto_enumTypes[0].Descriptor()
}

func (EventType) Type() protoreflect.EnumType {
	return &file_tracker_proto_enumTypes[0]
}

func (x EventType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use EventType.Descriptor instead.
func (EventType) EnumDescriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{0}
}

type Task struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Label         string                 `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
	Link          string                 `protobuf:"bytes,3,opt,name=link,proto3" json:"link,omitempty"`
	OwnerId       int64                  `protobuf:"varint,4,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	OwnerName     string                 `protobuf:"bytes,5,opt,name=owner_name,json=ownerName,proto3" json:"owner_name,omitempty"`
	CreatedAt     int64                  `protobuf:"varint,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	Checked       bool                   `protobuf:"varint,7,opt,name=checked,proto3" json:"checked,omitempty"`
	Private       bool                   `protobuf:"varint,8,opt,name=private,proto3" json:"private,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Task) Reset() {
	*x = Task{}
	mi := &file_tracker_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Task) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Task) ProtoMessage() {}

func (x *Task) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Task.ProtoReflect.Descriptor instead.
func (*Task) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{0}
}

func (x *Task) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Task) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *Task) GetLink() string {
	if x != nil {
		return x.Link
	}
	return ""
}

func (x *Task) GetOwnerId() int64 {
	if x != nil {
		return x.OwnerId
	}
	return 0
}

func (x *Task) GetOwnerName() string {
	if x != nil {
		return x.OwnerName
	}
	return ""
}

func (x *Task) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *Task) GetChecked() bool {
	if x != nil {
		return x.Checked
	}
	return false
}

func (x *Task) GetPrivate() bool {
	if x != nil {
		return x.Private
	}
	return false
}

type Project struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Project       string                 `protobuf:"bytes,2,opt,name=project,proto3" json:"project,omitempty"`
	Link          string                 `protobuf:"bytes,3,opt,name=link,proto3" json:"link,omitempty"`
	OwnerId       int64                  `protobuf:"varint,4,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	OwnerName     string                 `protobuf:"bytes,5,opt,name=owner_name,json=ownerName,proto3" json:"owner_name,omitempty"`
	CreatedAt     int64                  `protobuf:"varint,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	Checked       bool                   `protobuf:"varint,7,opt,name=checked,proto3" json:"checked,omitempty"`
	Private       bool                   `protobuf:"varint,8,opt,name=private,proto3" json:"private,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Project) Reset() {
	*x = Project{}
	mi := &file_tracker_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Project) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Project) ProtoMessage() {}

func (x *Project) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Project.ProtoReflect.Descriptor instead.
func (*Project) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{1}
}

func (x *Project) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Project) GetProject() string {
	if x != nil {
		return x.Project
	}
	return ""
}

func (x *Project) GetLink() string {
	if x != nil {
		return x.Link
	}
	return ""
}

func (x *Project) GetOwnerId() int64 {
	if x != nil {
		return x.OwnerId
	}
	return 0
}

func (x *Project) GetOwnerName() string {
	if x != nil {
		return x.OwnerName
	}
	return ""
}

func (x *Project) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *Project) GetChecked() bool {
	if x != nil {
		return x.Checked
	}
	return false
}

func (x *Project) GetPrivate() bool {
	if x != nil {
		return x.Private
	}
	return false
}

type TaskEvent struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Type   EventType              `protobuf:"varint,1,opt,name=type,proto3,enum=tracker.EventType" json:"type,omitempty"`
	TaskId int64                  `protobuf:"varint,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	// Unset on EVENT_TYPE_REMOVED.
	Task          *Task `protobuf:"bytes,3,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaskEvent) Reset() {
	*x = TaskEvent{}
	mi := &file_tracker_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskEvent) ProtoMessage() {}

func (x *TaskEvent) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskEvent.ProtoReflect.Descriptor instead.
func (*TaskEvent) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{2}
}

func (x *TaskEvent) GetType() EventType {
	if x != nil {
		return x.Type
	}
	return EventType_EVENT_TYPE_UNSPECIFIED
}

func (x *TaskEvent) GetTaskId() int64 {
	if x != nil {
		return x.TaskId
	}
	return 0
}

func (x *TaskEvent) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type ProjectEvent struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Type      EventType              `protobuf:"varint,1,opt,name=type,proto3,enum=tracker.EventType" json:"type,omitempty"`
	ProjectId int64                  `protobuf:"varint,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	// Unset on EVENT_TYPE_REMOVED.
	Project       *Project `protobuf:"bytes,3,opt,name=project,proto3" json:"project,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProjectEvent) Reset() {
	*x = ProjectEvent{}
	mi := &file_tracker_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProjectEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProjectEvent) ProtoMessage() {}

func (x *ProjectEvent) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProjectEvent.ProtoReflect.Descriptor instead.
func (*ProjectEvent) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{3}
}

func (x *ProjectEvent) GetType() EventType {
	if x != nil {
		return x.Type
	}
	return EventType_EVENT_TYPE_UNSPECIFIED
}

func (x *ProjectEvent) GetProjectId() int64 {
	if x != nil {
		return x.ProjectId
	}
	return 0
}

func (x *ProjectEvent) GetProject() *Project {
	if x != nil {
		return x.Project
	}
	return nil
}

type AddTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Label         string                 `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	Link          string                 `protobuf:"bytes,2,opt,name=link,proto3" json:"link,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddTaskRequest) Reset() {
	*x = AddTaskRequest{}
	mi := &file_tracker_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddTaskRequest) ProtoMessage() {}

func (x *AddTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddTaskRequest.ProtoReflect.Descriptor instead.
func (*AddTaskRequest) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{4}
}

func (x *AddTaskRequest) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *AddTaskRequest) GetLink() string {
	if x != nil {
		return x.Link
	}
	return ""
}

type AddTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddTaskResponse) Reset() {
	*x = AddTaskResponse{}
	mi := &file_tracker_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddTaskResponse) ProtoMessage() {}

func (x *AddTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddTaskResponse.ProtoReflect.Descriptor instead.
func (*AddTaskResponse) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{5}
}

func (x *AddTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type DeleteTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        int64                  `protobuf:"varint,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTaskRequest) Reset() {
	*x = DeleteTaskRequest{}
	mi := &file_tracker_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTaskRequest) ProtoMessage() {}

func (x *DeleteTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTaskRequest.ProtoReflect.Descriptor instead.
func (*DeleteTaskRequest) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{6}
}

func (x *DeleteTaskRequest) GetTaskId() int64 {
	if x != nil {
		return x.TaskId
	}
	return 0
}

type DeleteTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTaskResponse) Reset() {
	*x = DeleteTaskResponse{}
	mi := &file_tracker_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTaskResponse) ProtoMessage() {}

func (x *DeleteTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTaskResponse.ProtoReflect.Descriptor instead.
func (*DeleteTaskResponse) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{7}
}

func (x *DeleteTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type AddProjectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Project       string                 `protobuf:"bytes,1,opt,name=project,proto3" json:"project,omitempty"`
	Link          string                 `protobuf:"bytes,2,opt,name=link,proto3" json:"link,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddProjectRequest) Reset() {
	*x = AddProjectRequest{}
	mi := &file_tracker_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddProjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddProjectRequest) ProtoMessage() {}

func (x *AddProjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddProjectRequest.ProtoReflect.Descriptor instead.
func (*AddProjectRequest) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{8}
}

func (x *AddProjectRequest) GetProject() string {
	if x != nil {
		return x.Project
	}
	return ""
}

func (x *AddProjectRequest) GetLink() string {
	if x != nil {
		return x.Link
	}
	return ""
}

type AddProjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Project       *Project               `protobuf:"bytes,1,opt,name=project,proto3" json:"project,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddProjectResponse) Reset() {
	*x = AddProjectResponse{}
	mi := &file_tracker_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddProjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddProjectResponse) ProtoMessage() {}

func (x *AddProjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddProjectResponse.ProtoReflect.Descriptor instead.
func (*AddProjectResponse) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{9}
}

func (x *AddProjectResponse) GetProject() *Project {
	if x != nil {
		return x.Project
	}
	return nil
}

type DeleteProjectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     int64                  `protobuf:"varint,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteProjectRequest) Reset() {
	*x = DeleteProjectRequest{}
	mi := &file_tracker_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteProjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteProjectRequest) ProtoMessage() {}

func (x *DeleteProjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteProjectRequest.ProtoReflect.Descriptor instead.
func (*DeleteProjectRequest) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteProjectRequest) GetProjectId() int64 {
	if x != nil {
		return x.ProjectId
	}
	return 0
}

type DeleteProjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Project       *Project               `protobuf:"bytes,1,opt,name=project,proto3" json:"project,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteProjectResponse) Reset() {
	*x = DeleteProjectResponse{}
	mi := &file_tracker_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteProjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteProjectResponse) ProtoMessage() {}

func (x *DeleteProjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteProjectResponse.ProtoReflect.Descriptor instead.
func (*DeleteProjectResponse) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{11}
}

func (x *DeleteProjectResponse) GetProject() *Project {
	if x != nil {
		return x.Project
	}
	return nil
}

type SetCheckedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecordId      int64                  `protobuf:"varint,1,opt,name=record_id,json=recordId,proto3" json:"record_id,omitempty"`
	Checked       bool                   `protobuf:"varint,2,opt,name=checked,proto3" json:"checked,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetCheckedRequest) Reset() {
	*x = SetCheckedRequest{}
	mi := &file_tracker_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetCheckedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetCheckedRequest) ProtoMessage() {}

func (x *SetCheckedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetCheckedRequest.ProtoReflect.Descriptor instead.
func (*SetCheckedRequest) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{12}
}

func (x *SetCheckedRequest) GetRecordId() int64 {
	if x != nil {
		return x.RecordId
	}
	return 0
}

func (x *SetCheckedRequest) GetChecked() bool {
	if x != nil {
		return x.Checked
	}
	return false
}

type SetCheckedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetCheckedResponse) Reset() {
	*x = SetCheckedResponse{}
	mi := &file_tracker_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetCheckedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetCheckedResponse) ProtoMessage() {}

func (x *SetCheckedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetCheckedResponse.ProtoReflect.Descriptor instead.
func (*SetCheckedResponse) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{13}
}

type SetPrivateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecordId      int64                  `protobuf:"varint,1,opt,name=record_id,json=recordId,proto3" json:"record_id,omitempty"`
	Private       bool                   `protobuf:"varint,2,opt,name=private,proto3" json:"private,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetPrivateRequest) Reset() {
	*x = SetPrivateRequest{}
	mi := &file_tracker_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetPrivateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPrivateRequest) ProtoMessage() {}

func (x *SetPrivateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPrivateRequest.ProtoReflect.Descriptor instead.
func (*SetPrivateRequest) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{14}
}

func (x *SetPrivateRequest) GetRecordId() int64 {
	if x != nil {
		return x.RecordId
	}
	return 0
}

func (x *SetPrivateRequest) GetPrivate() bool {
	if x != nil {
		return x.Private
	}
	return false
}

type SetPrivateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetPrivateResponse) Reset() {
	*x = SetPrivateResponse{}
	mi := &file_tracker_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetPrivateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPrivateResponse) ProtoMessage() {}

func (x *SetPrivateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPrivateResponse.ProtoReflect.Descriptor instead.
func (*SetPrivateResponse) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{15}
}

type ListTasksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HideCompleted bool                   `protobuf:"varint,1,opt,name=hide_completed,json=hideCompleted,proto3" json:"hide_completed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTasksRequest) Reset() {
	*x = ListTasksRequest{}
	mi := &file_tracker_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksRequest) ProtoMessage() {}

func (x *ListTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksRequest.ProtoReflect.Descriptor instead.
func (*ListTasksRequest) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{16}
}

func (x *ListTasksRequest) GetHideCompleted() bool {
	if x != nil {
		return x.HideCompleted
	}
	return false
}

type ListTasksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tasks         []*Task                `protobuf:"bytes,1,rep,name=tasks,proto3" json:"tasks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTasksResponse) Reset() {
	*x = ListTasksResponse{}
	mi := &file_tracker_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksResponse) ProtoMessage() {}

func (x *ListTasksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksResponse.ProtoReflect.Descriptor instead.
func (*ListTasksResponse) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{17}
}

func (x *ListTasksResponse) GetTasks() []*Task {
	if x != nil {
		return x.Tasks
	}
	return nil
}

type ListProjectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HideCompleted bool                   `protobuf:"varint,1,opt,name=hide_completed,json=hideCompleted,proto3" json:"hide_completed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProjectsRequest) Reset() {
	*x = ListProjectsRequest{}
	mi := &file_tracker_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProjectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProjectsRequest) ProtoMessage() {}

func (x *ListProjectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProjectsRequest.ProtoReflect.Descriptor instead.
func (*ListProjectsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{18}
}

func (x *ListProjectsRequest) GetHideCompleted() bool {
	if x != nil {
		return x.HideCompleted
	}
	return false
}

type ListProjectsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Projects      []*Project             `protobuf:"bytes,1,rep,name=projects,proto3" json:"projects,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProjectsResponse) Reset() {
	*x = ListProjectsResponse{}
	mi := &file_tracker_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProjectsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProjectsResponse) ProtoMessage() {}

func (x *ListProjectsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProjectsResponse.ProtoReflect.Descriptor instead.
func (*ListProjectsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{19}
}

func (x *ListProjectsResponse) GetProjects() []*Project {
	if x != nil {
		return x.Projects
	}
	return nil
}

type IncompleteCountRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IncompleteCountRequest) Reset() {
	*x = IncompleteCountRequest{}
	mi := &file_tracker_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IncompleteCountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IncompleteCountRequest) ProtoMessage() {}

func (x *IncompleteCountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IncompleteCountRequest.ProtoReflect.Descriptor instead.
func (*IncompleteCountRequest) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{20}
}

type IncompleteCountResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Count         int64                  `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IncompleteCountResponse) Reset() {
	*x = IncompleteCountResponse{}
	mi := &file_tracker_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IncompleteCountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IncompleteCountResponse) ProtoMessage() {}

func (x *IncompleteCountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IncompleteCountResponse.ProtoReflect.Descriptor instead.
func (*IncompleteCountResponse) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{21}
}

func (x *IncompleteCountResponse) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

type SearchTasksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchTasksRequest) Reset() {
	*x = SearchTasksRequest{}
	mi := &file_tracker_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchTasksRequest) ProtoMessage() {}

func (x *SearchTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchTasksRequest.ProtoReflect.Descriptor instead.
func (*SearchTasksRequest) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{22}
}

func (x *SearchTasksRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type SearchTasksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tasks         []*Task                `protobuf:"bytes,1,rep,name=tasks,proto3" json:"tasks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchTasksResponse) Reset() {
	*x = SearchTasksResponse{}
	mi := &file_tracker_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchTasksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchTasksResponse) ProtoMessage() {}

func (x *SearchTasksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchTasksResponse.ProtoReflect.Descriptor instead.
func (*SearchTasksResponse) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{23}
}

func (x *SearchTasksResponse) GetTasks() []*Task {
	if x != nil {
		return x.Tasks
	}
	return nil
}

type SearchProjectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchProjectsRequest) Reset() {
	*x = SearchProjectsRequest{}
	mi := &file_tracker_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchProjectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchProjectsRequest) ProtoMessage() {}

func (x *SearchProjectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchProjectsRequest.ProtoReflect.Descriptor instead.
func (*SearchProjectsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{24}
}

func (x *SearchProjectsRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type SearchProjectsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Projects      []*Project             `protobuf:"bytes,1,rep,name=projects,proto3" json:"projects,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchProjectsResponse) Reset() {
	*x = SearchProjectsResponse{}
	mi := &file_tracker_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchProjectsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchProjectsResponse) ProtoMessage() {}

func (x *SearchProjectsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchProjectsResponse.ProtoReflect.Descriptor instead.
func (*SearchProjectsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{25}
}

func (x *SearchProjectsResponse) GetProjects() []*Project {
	if x != nil {
		return x.Projects
	}
	return nil
}

type WatchTasksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchTasksRequest) Reset() {
	*x = WatchTasksRequest{}
	mi := &file_tracker_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchTasksRequest) ProtoMessage() {}

func (x *WatchTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchTasksRequest.ProtoReflect.Descriptor instead.
func (*WatchTasksRequest) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{26}
}

type WatchProjectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchProjectsRequest) Reset() {
	*x = WatchProjectsRequest{}
	mi := &file_tracker_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchProjectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchProjectsRequest) ProtoMessage() {}

func (x *WatchProjectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchProjectsRequest.ProtoReflect.Descriptor instead.
func (*WatchProjectsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_proto_rawDescGZIP(), []int{27}
}

var File_tracker_proto protoreflect.FileDescriptor

const file_tracker_proto_rawDesc = "" +
	"\n" +
	"\rtracker.proto\x12\atracker\x1a\x1cgoogle/api/annotations.proto\"\xcd\x01\n" +
	"\x04Task\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x14\n" +
	"\x05label\x18\x02 \x01(\tR\x05label\x12\x12\n" +
	"\x04link\x18\x03 \x01(\tR\x04link\x12\x19\n" +
	"\bowner_id\x18\x04 \x01(\x03R\aownerId\x12\x1d\n" +
	"\n" +
	"owner_name\x18\x05 \x01(\tR\townerName\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\x03R\tcreatedAt\x12\x18\n" +
	"\achecked\x18\a \x01(\bR\achecked\x12\x18\n" +
	"\aprivate\x18\b \x01(\bR\aprivate\"\xd4\x01\n" +
	"\aProject\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x18\n" +
	"\aproject\x18\x02 \x01(\tR\aproject\x12\x12\n" +
	"\x04link\x18\x03 \x01(\tR\x04link\x12\x19\n" +
	"\bowner_id\x18\x04 \x01(\x03R\aownerId\x12\x1d\n" +
	"\n" +
	"owner_name\x18\x05 \x01(\tR\townerName\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\x03R\tcreatedAt\x12\x18\n" +
	"\achecked\x18\a \x01(\bR\achecked\x12\x18\n" +
	"\aprivate\x18\b \x01(\bR\aprivate\"o\n" +
	"\tTaskEvent\x12&\n" +
	"\x04type\x18\x01 \x01(\x0e2\x12.tracker.EventTypeR\x04type\x12\x17\n" +
	"\atask_id\x18\x02 \x01(\x03R\x06taskId\x12!\n" +
	"\x04task\x18\x03 \x01(\v2\r.tracker.TaskR\x04task\"\x81\x01\n" +
	"\fProjectEvent\x12&\n" +
	"\x04type\x18\x01 \x01(\x0e2\x12.tracker.EventTypeR\x04type\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\x03R\tprojectId\x12*\n" +
	"\aproject\x18\x03 \x01(\v2\x10.tracker.ProjectR\aproject\":\n" +
	"\x0eAddTaskRequest\x12\x14\n" +
	"\x05label\x18\x01 \x01(\tR\x05label\x12\x12\n" +
	"\x04link\x18\x02 \x01(\tR\x04link\"4\n" +
	"\x0fAddTaskResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.tracker.TaskR\x04task\",\n" +
	"\x11DeleteTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\x03R\x06taskId\"7\n" +
	"\x12DeleteTaskResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.tracker.TaskR\x04task\"A\n" +
	"\x11AddProjectRequest\x12\x18\n" +
	"\aproject\x18\x01 \x01(\tR\aproject\x12\x12\n" +
	"\x04link\x18\x02 \x01(\tR\x04link\"@\n" +
	"\x12AddProjectResponse\x12*\n" +
	"\aproject\x18\x01 \x01(\v2\x10.tracker.ProjectR\aproject\"5\n" +
	"\x14DeleteProjectRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\x03R\tprojectId\"C\n" +
	"\x15DeleteProjectResponse\x12*\n" +
	"\aproject\x18\x01 \x01(\v2\x10.tracker.ProjectR\aproject\"J\n" +
	"\x11SetCheckedRequest\x12\x1b\n" +
	"\trecord_id\x18\x01 \x01(\x03R\brecordId\x12\x18\n" +
	"\achecked\x18\x02 \x01(\bR\achecked\"\x14\n" +
	"\x12SetCheckedResponse\"J\n" +
	"\x11SetPrivateRequest\x12\x1b\n" +
	"\trecord_id\x18\x01 \x01(\x03R\brecordId\x12\x18\n" +
	"\aprivate\x18\x02 \x01(\bR\aprivate\"\x14\n" +
	"\x12SetPrivateResponse\"9\n" +
	"\x10ListTasksRequest\x12%\n" +
	"\x0ehide_completed\x18\x01 \x01(\bR\rhideCompleted\"8\n" +
	"\x11ListTasksResponse\x12#\n" +
	"\x05tasks\x18\x01 \x03(\v2\r.tracker.TaskR\x05tasks\"<\n" +
	"\x13ListProjectsRequest\x12%\n" +
	"\x0ehide_completed\x18\x01 \x01(\bR\rhideCompleted\"D\n" +
	"\x14ListProjectsResponse\x12,\n" +
	"\bprojects\x18\x01 \x03(\v2\x10.tracker.ProjectR\bprojects\"\x18\n" +
	"\x16IncompleteCountRequest\"/\n" +
	"\x17IncompleteCountResponse\x12\x14\n" +
	"\x05count\x18\x01 \x01(\x03R\x05count\"*\n" +
	"\x12SearchTasksRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\":\n" +
	"\x13SearchTasksResponse\x12#\n" +
	"\x05tasks\x18\x01 \x03(\v2\r.tracker.TaskR\x05tasks\"-\n" +
	"\x15SearchProjectsRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\"F\n" +
	"\x16SearchProjectsResponse\x12,\n" +
	"\bprojects\x18\x01 \x03(\v2\x10.tracker.ProjectR\bprojects\"\x13\n" +
	"\x11WatchTasksRequest\"\x16\n" +
	"\x14WatchProjectsRequest*m\n" +
	"\tEventType\x12\x1a\n" +
	"\x16EVENT_TYPE_UNSPECIFIED\x10\x00\x12\x14\n" +
	"\x10EVENT_TYPE_ADDED\x10\x01\x12\x16\n" +
	"\x12EVENT_TYPE_CHANGED\x10\x02\x12\x16\n" +
	"\x12EVENT_TYPE_REMOVED\x10\x032\xc7\n" +
	"\n" +
	"\x0eTrackerService\x12R\n" +
	"\aAddTask\x12\x17.tracker.AddTaskRequest\x1a\x18.tracker.AddTaskResponse\"\x14\x82\xd3\xe4\x93\x02\x0e:\x01*\"\t/v1/tasks\x12b\n" +
	"\n" +
	"DeleteTask\x12\x1a.tracker.DeleteTaskRequest\x1a\x1b.tracker.DeleteTaskResponse\"\x1b\x82\xd3\xe4\x93\x02\x15*\x13/v1/tasks/{task_id}\x12^\n" +
	"\n" +
	"AddProject\x12\x1a.tracker.AddProjectRequest\x1a\x1b.tracker.AddProjectResponse\"\x17\x82\xd3\xe4\x93\x02\x11:\x01*\"\f/v1/projects\x12q\n" +
	"\rDeleteProject\x12\x1d.tracker.DeleteProjectRequest\x1a\x1e.tracker.DeleteProjectResponse\"!\x82\xd3\xe4\x93\x02\x1b*\x19/v1/projects/{project_id}\x12q\n" +
	"\n" +
	"SetChecked\x12\x1a.tracker.SetCheckedRequest\x1a\x1b.tracker.SetCheckedResponse\"*\x82\xd3\xe4\x93\x02$:\x01*\"\x1f/v1/records/{record_id}/checked\x12q\n" +
	"\n" +
	"SetPrivate\x12\x1a.tracker.SetPrivateRequest\x1a\x1b.tracker.SetPrivateResponse\"*\x82\xd3\xe4\x93\x02$:\x01*\"\x1f/v1/records/{record_id}/private\x12U\n" +
	"\tListTasks\x12\x19.tracker.ListTasksRequest\x1a\x1a.tracker.ListTasksResponse\"\x11\x82\xd3\xe4\x93\x02\v\x12\t/v1/tasks\x12a\n" +
	"\fListProjects\x12\x1c.tracker.ListProjectsRequest\x1a\x1d.tracker.ListProjectsResponse\"\x14\x82\xd3\xe4\x93\x02\x0e\x12\f/v1/projects\x12x\n" +
	"\x0fIncompleteCount\x12\x1f.tracker.IncompleteCountRequest\x1a .tracker.IncompleteCountResponse\"\"\x82\xd3\xe4\x93\x02\x1c\x12\x1a/v1/tasks/incomplete-count\x12b\n" +
	"\vSearchTasks\x12\x1b.tracker.SearchTasksRequest\x1a\x1c.tracker.SearchTasksResponse\"\x18\x82\xd3\xe4\x93\x02\x12\x12\x10/v1/tasks/search\x12n\n" +
	"\x0eSearchProjects\x12\x1e.tracker.SearchProjectsRequest\x1a\x1f.tracker.SearchProjectsResponse\"\x1b\x82\xd3\xe4\x93\x02\x15\x12\x13/v1/projects/search\x12W\n" +
	"\n" +
	"WatchTasks\x12\x1a.tracker.WatchTasksRequest\x1a\x12.tracker.TaskEvent\"\x17\x82\xd3\xe4\x93\x02\x11\x12\x0f/v1/tasks/watch0\x01\x12c\n" +
	"\rWatchProjects\x12\x1d.tracker.WatchProjectsRequest\x1a\x15.tracker.ProjectEvent\"\x1a\x82\xd3\xe4\x93\x02\x14\x12\x12/v1/projects/watch0\x01B Z\x1etracker-grpc/api/proto/gen;genb\x06proto3"

var (
	file_tracker_proto_rawDescOnce sync.Once
	file_tracker_proto_rawDescData []byte
)

func file_tracker_proto_rawDescGZIP() []byte {
	file_tracker_proto_rawDescOnce.Do(func() {
		file_tracker_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_tracker_proto_rawDesc), len(file_tracker_proto_rawDesc)))
	})
	return file_tracker_proto_rawDescData
}

var file_tracker_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_tracker_proto_msgTypes = make([]protoimpl.MessageInfo, 28)
var file_tracker_proto_goTypes = []any{
	(EventType)(0),                  // 0: tracker.EventType
	(*Task)(nil),                    // 1: tracker.Task
	(*Project)(nil),                 // 2: tracker.Project
	(*TaskEvent)(nil),               // 3: tracker.TaskEvent
	(*ProjectEvent)(nil),            // 4: tracker.ProjectEvent
	(*AddTaskRequest)(nil),          // 5: tracker.AddTaskRequest
	(*AddTaskResponse)(nil),         // 6: tracker.AddTaskResponse
	(*DeleteTaskRequest)(nil),       // 7: tracker.DeleteTaskRequest
	(*DeleteTaskResponse)(nil),      // 8: tracker.DeleteTaskResponse
	(*AddProjectRequest)(nil),       // 9: tracker.AddProjectRequest
	(*AddProjectResponse)(nil),      // 10: tracker.AddProjectResponse
	(*DeleteProjectRequest)(nil),    // 11: tracker.DeleteProjectRequest
	(*DeleteProjectResponse)(nil),   // 12: tracker.DeleteProjectResponse
	(*SetCheckedRequest)(nil),       // 13: tracker.SetCheckedRequest
	(*SetCheckedResponse)(nil),      // 14: tracker.SetCheckedResponse
	(*SetPrivateRequest)(nil),       // 15: tracker.SetPrivateRequest
	(*SetPrivateResponse)(nil),      // 16: tracker.SetPrivateResponse
	(*ListTasksRequest)(nil),        // 17: tracker.ListTasksRequest
	(*ListTasksResponse)(nil),       // 18: tracker.ListTasksResponse
	(*ListProjectsRequest)(nil),     // 19: tracker.ListProjectsRequest
	(*ListProjectsResponse)(nil),    // 20: tracker.ListProjectsResponse
	(*IncompleteCountRequest)(nil),  // 21: tracker.IncompleteCountRequest
	(*IncompleteCountResponse)(nil), // 22: tracker.IncompleteCountResponse
	(*SearchTasksRequest)(nil),      // 23: tracker.SearchTasksRequest
	(*SearchTasksResponse)(nil),     // 24: tracker.SearchTasksResponse
	(*SearchProjectsRequest)(nil),   // 25: tracker.SearchProjectsRequest
	(*SearchProjectsResponse)(nil),  // 26: tracker.SearchProjectsResponse
	(*WatchTasksRequest)(nil),       // 27: tracker.WatchTasksRequest
	(*WatchProjectsRequest)(nil),    // 28: tracker.WatchProjectsRequest
}
var file_tracker_proto_depIdxs = []int32{
	0,  // 0: tracker.TaskEvent.type:type_name -> tracker.EventType
	1,  // 1: tracker.TaskEvent.task:type_name -> tracker.Task
	0,  // 2: tracker.ProjectEvent.type:type_name -> tracker.EventType
	2,  // 3: tracker.ProjectEvent.project:type_name -> tracker.Project
	1,  // 4: tracker.AddTaskResponse.task:type_name -> tracker.Task
	1,  // 5: tracker.DeleteTaskResponse.task:type_name -> tracker.Task
	2,  // 6: tracker.AddProjectResponse.project:type_name -> tracker.Project
	2,  // 7: tracker.DeleteProjectResponse.project:type_name -> tracker.Project
	1,  // 8: tracker.ListTasksResponse.tasks:type_name -> tracker.Task
	2,  // 9: tracker.ListProjectsResponse.projects:type_name -> tracker.Project
	1,  // 10: tracker.SearchTasksResponse.tasks:type_name -> tracker.Task
	2,  // 11: tracker.SearchProjectsResponse.projects:type_name -> tracker.Project
	5,  // 12: tracker.TrackerService.AddTask:input_type -> tracker.AddTaskRequest
	7,  // 13: tracker.TrackerService.DeleteTask:input_type -> tracker.DeleteTaskRequest
	9,  // 14: tracker.TrackerService.AddProject:input_type -> tracker.AddProjectRequest
	11, // 15: tracker.TrackerService.DeleteProject:input_type -> tracker.DeleteProjectRequest
	13, // 16: tracker.TrackerService.SetChecked:input_type -> tracker.SetCheckedRequest
	15, // 17: tracker.TrackerService.SetPrivate:input_type -> tracker.SetPrivateRequest
	17, // 18: tracker.TrackerService.ListTasks:input_type -> tracker.ListTasksRequest
	19, // 19: tracker.TrackerService.ListProjects:input_type -> tracker.ListProjectsRequest
	21, // 20: tracker.TrackerService.IncompleteCount:input_type -> tracker.IncompleteCountRequest
	23, // 21: tracker.TrackerService.SearchTasks:input_type -> tracker.SearchTasksRequest
	25, // 22: tracker.TrackerService.SearchProjects:input_type -> tracker.SearchProjectsRequest
	27, // 23: tracker.TrackerService.WatchTasks:input_type -> tracker.WatchTasksRequest
	28, // 24: tracker.TrackerService.WatchProjects:input_type -> tracker.WatchProjectsRequest
	6,  // 25: tracker.TrackerService.AddTask:output_type -> tracker.AddTaskResponse
	8,  // 26: tracker.TrackerService.DeleteTask:output_type -> tracker.DeleteTaskResponse
	10, // 27: tracker.TrackerService.AddProject:output_type -> tracker.AddProjectResponse
	12, // 28: tracker.TrackerService.DeleteProject:output_type -> tracker.DeleteProjectResponse
	14, // 29: tracker.TrackerService.SetChecked:output_type -> tracker.SetCheckedResponse
	16, // 30: tracker.TrackerService.SetPrivate:output_type -> tracker.SetPrivateResponse
	18, // 31: tracker.TrackerService.ListTasks:output_type -> tracker.ListTasksResponse
	20, // 32: tracker.TrackerService.ListProjects:output_type -> tracker.ListProjectsResponse
	22, // 33: tracker.TrackerService.IncompleteCount:output_type -> tracker.IncompleteCountResponse
	24, // 34: tracker.TrackerService.SearchTasks:output_type -> tracker.SearchTasksResponse
	26, // 35: tracker.TrackerService.SearchProjects:output_type -> tracker.SearchProjectsResponse
	3,  // 36: tracker.TrackerService.WatchTasks:output_type -> tracker.TaskEvent
	4,  // 37: tracker.TrackerService.WatchProjects:output_type -> tracker.ProjectEvent
	25, // [25:38] is the sub-list for method output_type
	12, // [12:25] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_tracker_proto_init() }
func file_tracker_proto_init() {
	if File_tracker_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_tracker_proto_rawDesc), len(file_tracker_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   28,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_tracker_proto_goTypes,
		DependencyIndexes: file_tracker_proto_depIdxs,
		EnumInfos:         file_tracker_proto_enumTypes,
		MessageInfos:      file_tracker_proto_msgTypes,
	}.Build()
	File_tracker_proto = out.File
	file_tracker_proto_goTypes = nil
	file_tracker_proto_depIdxs = nil
}
